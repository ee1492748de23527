package catalog

// Availability is the circulation status of a single format.
type Availability string

// Format availability statuses.
const (
	Available  Availability = "available"
	CheckedOut Availability = "checked_out"
	OnHold     Availability = "on_hold"
)

// Format is one physical or digital edition of an item
// (hardcover, ebook, audiobook, dvd, kit, ...).
type Format struct {
	name   string
	status Availability
}

// NewFormat creates a Format.
func NewFormat(name string, status Availability) Format {
	return Format{name: name, status: status}
}

// Name returns the format name.
func (f Format) Name() string { return f.name }

// Status returns the availability status.
func (f Format) Status() Availability { return f.status }
