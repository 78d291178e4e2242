package models

type TicketType int

const (
	GeneralInvoice TicketType = iota
	TrainTicket
	FlightItinerary
	TaxiReceipt
	OtherTicket
)

var ticketTypeNames = map[TicketType]string{
	GeneralInvoice:  "general-invoice",
	TrainTicket:     "train-ticket",
	FlightItinerary: "flight-itinerary",
	TaxiReceipt:     "taxi-receipt",
	OtherTicket:     "other",
}

func (t TicketType) String() string {
	if name, ok := ticketTypeNames[t]; ok {
		return name
	}
	return ticketTypeNames[OtherTicket]
}

// TicketSize is the physical size of a document type in millimetres.
type TicketSize struct {
	Width       float64 `json:"width_mm"`
	Height      float64 `json:"height_mm"`
	IsLandscape bool    `json:"landscape"`
}

type DocumentKind int

const (
	KindImage DocumentKind = iota
	KindPDF
)

func (k DocumentKind) String() string {
	if k == KindPDF {
		return "pdf"
	}
	return "image"
}

type ImportedDocument struct {
	DisplayName string
	SourcePath  string
	Kind        DocumentKind
}
