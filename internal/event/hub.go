/*
Package event provides the shared logger and a publish/subscribe hub for
notifications such as "no faces found".

Topics are dot-separated, e.g. "emojify.nofaces", and subscriptions may use
the "*" wildcard, e.g. "emojify.*".
*/
package event

import (
	"github.com/leandro-lugaresi/hub"
)

type Hub = hub.Hub
type Data = hub.Fields
type Message = hub.Message
type Subscription = hub.Subscription

var channelCap = 100
var sharedHub = NewHub()

// NewHub returns a new hub instance.
func NewHub() *Hub {
	return hub.New()
}

// SharedHub returns the shared hub instance.
func SharedHub() *Hub {
	return sharedHub
}

// Publish publishes an event to all subscribers of the topic.
func Publish(topic string, data Data) {
	SharedHub().Publish(Message{
		Name:   topic,
		Fields: data,
	})
}

// Subscribe returns a buffered subscription for the given topics.
func Subscribe(topics ...string) Subscription {
	return SharedHub().Subscribe(channelCap, topics...)
}

// Unsubscribe removes a subscription and closes its channel.
func Unsubscribe(s Subscription) {
	SharedHub().Unsubscribe(s)
}
