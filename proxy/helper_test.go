package proxy

import (
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func testBuilder() (*ResponseBuilder, *test.Hook) {
	log, hook := test.NewNullLogger()
	return NewResponseBuilder(log), hook
}

// cyclicObject returns a map that contains itself and can't be serialized.
func cyclicObject() map[string]interface{} {
	m := map[string]interface{}{"name": "loop"}
	m["self"] = m
	return m
}

func errorEntries(hook *test.Hook) []logrus.Entry {
	var entries []logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel {
			entries = append(entries, *e)
		}
	}

	return entries
}
