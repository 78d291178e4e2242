// Package ticket holds the fixed table of document types and their physical sizes.
package ticket

import (
	"strings"

	"github.com/sizuichu/SuperFaPiao/pkg/models"
)

var sizes = map[models.TicketType]models.TicketSize{
	models.GeneralInvoice:  {Width: 210, Height: 140, IsLandscape: true},
	models.TrainTicket:     {Width: 54, Height: 143, IsLandscape: false},
	models.FlightItinerary: {Width: 210, Height: 100, IsLandscape: true},
	models.TaxiReceipt:     {Width: 80, Height: 150, IsLandscape: false},
	models.OtherTicket:     {Width: 210, Height: 297, IsLandscape: false},
}

// labels also accepts the Chinese names printed on the documents.
var labels = map[string]models.TicketType{
	"general-invoice":  models.GeneralInvoice,
	"invoice":          models.GeneralInvoice,
	"增值税电子发票":          models.GeneralInvoice,
	"train-ticket":     models.TrainTicket,
	"train":            models.TrainTicket,
	"火车票":              models.TrainTicket,
	"flight-itinerary": models.FlightItinerary,
	"flight":           models.FlightItinerary,
	"飞机行程单":            models.FlightItinerary,
	"taxi-receipt":     models.TaxiReceipt,
	"taxi":             models.TaxiReceipt,
	"出租车发票":            models.TaxiReceipt,
	"other":            models.OtherTicket,
	"其他票据":             models.OtherTicket,
}

// SizeFor never fails: anything outside the table resolves to the "other" entry.
func SizeFor(t models.TicketType) models.TicketSize {
	if size, ok := sizes[t]; ok {
		return size
	}
	return sizes[models.OtherTicket]
}

func ParseType(tag string) models.TicketType {
	key := strings.ToLower(strings.TrimSpace(tag))
	key = strings.ReplaceAll(key, "_", "-")
	if t, ok := labels[key]; ok {
		return t
	}
	return models.OtherTicket
}

func Types() []models.TicketType {
	return []models.TicketType{
		models.GeneralInvoice,
		models.TrainTicket,
		models.FlightItinerary,
		models.TaxiReceipt,
		models.OtherTicket,
	}
}

// AllowsQuadruple reports whether four-up layouts are offered for the type.
// Only the narrow tickets fit four to a page.
func AllowsQuadruple(t models.TicketType) bool {
	return t == models.TrainTicket || t == models.TaxiReceipt
}

func DefaultMode(t models.TicketType) models.LayoutMode {
	if SizeFor(t).IsLandscape {
		return models.SingleLandscape
	}
	return models.SinglePortrait
}
