package event

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish(t *testing.T) {
	s := Subscribe("test.*")
	defer Unsubscribe(s)

	Publish("test.nofaces", Data{"message": "nothing here"})

	select {
	case msg := <-s.Receiver:
		assert.Equal(t, "test.nofaces", msg.Name)
		assert.Equal(t, "nothing here", msg.Fields["message"])
	case <-time.After(time.Second):
		require.Fail(t, "timeout waiting for event")
	}
}

func TestSetLevel(t *testing.T) {
	defer Log.SetLevel(logrus.InfoLevel)

	assert.Equal(t, logrus.DebugLevel, SetLevel("DEBUG"))
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
	assert.Equal(t, logrus.InfoLevel, SetLevel("chatty"))
}
