package http

import "time"

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created is the JSON body returned when the server generates the
// identifier for a newly created resource.
type Created struct {
	ID string `json:"id"`
}

// OrderPayload is the request body for creating and updating orders.
// Status is only honored on updates; new orders always start pending.
type OrderPayload struct {
	JobName         string  `json:"jobName"`
	JobNumber       string  `json:"jobNumber"`
	OrderNumber     string  `json:"orderNumber"`
	PurchaseOrder   string  `json:"purchaseOrder"`
	DesignerID      string  `json:"designerId"`
	SourceID        string  `json:"sourceId"`
	DestinationName string  `json:"destinationName"`
	Cost            float64 `json:"cost"`
	Priority        string  `json:"priority"`
	Status          string  `json:"status"`
}

// Order is the order representation returned by listings.
type Order struct {
	ID              string  `json:"id"`
	JobName         string  `json:"jobName"`
	JobNumber       string  `json:"jobNumber"`
	OrderNumber     string  `json:"orderNumber"`
	PurchaseOrder   string  `json:"purchaseOrder"`
	DesignerID      string  `json:"designerId"`
	SourceID        string  `json:"sourceId"`
	DestinationName string  `json:"destinationName"`
	Cost            float64 `json:"cost"`
	Status          string  `json:"status"`
	Priority        string  `json:"priority"`
	PickupID        *string `json:"pickupId,omitempty"`
	Version         int     `json:"version"`
}

// PickupPayload is the request body for creating and editing pickup runs.
// Status is optional on create and ignored on edit; an empty status starts
// the run scheduled.
type PickupPayload struct {
	Name          string    `json:"name"`
	DriverID      string    `json:"driverId"`
	ScheduledDate time.Time `json:"scheduledDate"`
	OrderIDs      []string  `json:"orderIds"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
}

// Pickup is the pickup-run representation returned by listings.
type Pickup struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	DriverID      string    `json:"driverId"`
	DriverName    string    `json:"driverName"`
	ScheduledDate time.Time `json:"scheduledDate"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	OrderIDs      []string  `json:"orderIds"`
	Version       int       `json:"version"`
}

// ReturnPayload is the request body for creating and updating return runs.
// DriverID may be null while the run is still unassigned. Status is
// optional on create and ignored on update; an empty status starts the run
// scheduled.
type ReturnPayload struct {
	Name          string    `json:"name"`
	DriverID      *string   `json:"driverId"`
	ScheduledDate time.Time `json:"scheduledDate"`
	OrderIDs      []string  `json:"orderIds"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
}

// Return is the return-run representation returned by listings.
type Return struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	DriverID      *string   `json:"driverId,omitempty"`
	DriverName    string    `json:"driverName,omitempty"`
	ScheduledDate time.Time `json:"scheduledDate"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	OrderIDs      []string  `json:"orderIds"`
	Version       int       `json:"version"`
}

// StatusChange is the request body for status transition endpoints.
type StatusChange struct {
	Status string `json:"status"`
}

// NewDriver is the request body for registering a driver.
type NewDriver struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Vehicle string `json:"vehicle"`
}

// NewDesigner is the request body for registering a designer.
type NewDesigner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// NewSource is the request body for registering a source.
type NewSource struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	MainContact string `json:"mainContact"`
}

// Driver is the driver entry in the roster response.
type Driver struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Vehicle string `json:"vehicle"`
}

// Designer is the designer entry in the roster response.
type Designer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Source is the source entry in the roster response.
type Source struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	MainContact string `json:"mainContact"`
}

// Roster bundles an organization's reference data.
type Roster struct {
	Drivers   []Driver   `json:"drivers"`
	Designers []Designer `json:"designers"`
	Sources   []Source   `json:"sources"`
}

// UsageMetrics reports plan consumption. Limits of -1 mean unlimited.
type UsageMetrics struct {
	Plan        string `json:"plan"`
	OrderCount  int    `json:"orderCount"`
	OrderLimit  int    `json:"orderLimit"`
	PickupCount int    `json:"pickupCount"`
	PickupLimit int    `json:"pickupLimit"`
	ReturnCount int    `json:"returnCount"`
}

// ManifestLine is one order row on the driver sheet.
type ManifestLine struct {
	OrderID         string  `json:"orderId"`
	JobName         string  `json:"jobName"`
	JobNumber       string  `json:"jobNumber"`
	OrderNumber     string  `json:"orderNumber"`
	SourceName      string  `json:"sourceName"`
	SourceAddress   string  `json:"sourceAddress"`
	DesignerName    string  `json:"designerName"`
	DestinationName string  `json:"destinationName"`
	Cost            float64 `json:"cost"`
}

// Manifest is the printable driver sheet for one pickup run.
type Manifest struct {
	PickupID      string         `json:"pickupId"`
	Name          string         `json:"name"`
	DriverName    string         `json:"driverName"`
	Vehicle       string         `json:"vehicle"`
	ScheduledDate time.Time      `json:"scheduledDate"`
	Status        string         `json:"status"`
	Lines         []ManifestLine `json:"lines"`
}
