package random

import (
	"fmt"

	"github.com/google/uuid"
)

// UUID returns a version-4 UUID drawn from this source. The version nibble
// is fixed to 4 and the variant bits to the RFC 4122 layout, so the result
// parses as a standard UUIDv4 while remaining reproducible for a seeded
// source.
func (r *Rand) UUID() string {
	var b [16]byte
	r.read(b[:])

	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // variant 10xx: {8,9,a,b}

	return uuid.UUID(b).String()
}

// IPAddress returns a random IPv4 address with uniform per-octet draws in
// dotted-decimal form.
func (r *Rand) IPAddress() string {
	return fmt.Sprintf("%d.%d.%d.%d",
		r.intn(256), r.intn(256), r.intn(256), r.intn(256))
}

// MACAddress returns a random MAC address as uppercase colon-separated hex.
func (r *Rand) MACAddress() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X",
		r.intn(256), r.intn(256), r.intn(256),
		r.intn(256), r.intn(256), r.intn(256))
}

// UUID returns a version-4 UUID from the default source.
func UUID() string { return Default().UUID() }

// IPAddress returns a random IPv4 address from the default source.
func IPAddress() string { return Default().IPAddress() }

// MACAddress returns a random MAC address from the default source.
func MACAddress() string { return Default().MACAddress() }
