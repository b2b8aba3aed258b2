package service

import (
	"context"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendToTopic pushes a notification to every device subscribed to topic.
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}

// VendorTopic is the push topic a vendor's devices subscribe to.
func VendorTopic(vendorID string) string {
	return "vendor-" + vendorID
}
