package domain

import "time"

// GuestMarker is recorded as BookedBy when nobody is logged in.
const GuestMarker = "guest"

// DateLayout is the calendar date format accepted on booking forms.
const DateLayout = "2006-01-02"

// ServiceKind is the type of travel service being booked.
type ServiceKind string

const (
	ServiceFlight ServiceKind = "flight"
	ServiceHotel  ServiceKind = "hotel"
	ServiceCar    ServiceKind = "car"
)

// ServiceKinds lists every bookable service in display order.
var ServiceKinds = []ServiceKind{ServiceFlight, ServiceHotel, ServiceCar}

// Booking is an immutable booking request. ID is assigned by the store.
type Booking struct {
	ID          int64       `json:"id" bson:"_id"`
	Service     ServiceKind `json:"service" bson:"service"`
	Destination string      `json:"destination" bson:"destination"`
	Date        time.Time   `json:"date" bson:"date"`
	Name        string      `json:"name" bson:"name"`
	Email       string      `json:"email" bson:"email"`
	BookedBy    string      `json:"booked_by" bson:"booked_by"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
}
