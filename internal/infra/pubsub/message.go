package pubsub

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/umithief/motovibe6/internal/domain/service"
	"github.com/umithief/motovibe6/internal/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// orderMessage is an order event encoded once for any transport. Events of
// one order share an ordering key so ordered subscriptions see them in turn.
type orderMessage struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

func newOrderMessage(event *service.OrderEvent) (*orderMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s event", event.Type)
	}

	attributes := map[string]string{
		"event_type": event.Type,
		"order_id":   event.OrderID,
		"order_code": event.OrderCode,
		"status":     event.Status,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &orderMessage{data: data, attributes: attributes, orderingKey: event.OrderID}, nil
}
