package redis

const (
	// KeyPrefixLink is the prefix for link keys
	KeyPrefixLink = "linkhub:link:"
	// KeyLinkOrder is the list of link IDs in catalog order
	KeyLinkOrder = "linkhub:links:order"
	// KeyPrefixInFlight is the prefix for in-flight submission locks
	KeyPrefixInFlight = "linkhub:inflight:"
)

// LinkKey returns the Redis key for a link by ID
func LinkKey(id string) string {
	return KeyPrefixLink + id
}

// LinkOrderKey returns the key of the catalog order list
func LinkOrderKey() string {
	return KeyLinkOrder
}

// InFlightKey returns the lock key for a form instance
func InFlightKey(key string) string {
	return KeyPrefixInFlight + key
}
