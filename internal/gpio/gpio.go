// Package gpio provides GPIO input reading with hardware abstraction.
// The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package gpio

// Reader reads the monitored contact's level.
type Reader interface {
	// Read returns the logical level of the contact (true = on).
	// Active-low wiring is handled below this interface; callers always
	// see the logical level.
	Read() (bool, error)

	// Close releases GPIO resources.
	Close() error
}

// DefaultPin is the default BCM pin number for the contact input.
const DefaultPin = 17
