package entity

type Message struct {
	To      string
	Subject string
	Body    string
	HTML    bool
}

type DeliveryReport struct {
	OK        bool   `json:"ok"`
	Provider  string `json:"provider"`
	To        string `json:"to"`
	MessageID string `json:"messageId"`
}
