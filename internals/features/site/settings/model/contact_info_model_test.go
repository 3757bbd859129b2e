package model

import "testing"

func TestWhatsAppURL(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want string
	}{
		{"spaces", "Hola equipo", "https://wa.me/51987654321?text=Hola%20equipo"},
		{"slash kept", "Precio 50/m2 & más?", "https://wa.me/51987654321?text=Precio%2050/m2%20%26%20m%C3%A1s%3F"},
		{"unreserved kept", "a_b.c-d~e", "https://wa.me/51987654321?text=a_b.c-d~e"},
		{"plus and at", "+1 @ac", "https://wa.me/51987654321?text=%2B1%20%40ac"},
		{"empty", "", "https://wa.me/51987654321?text="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ContactInfoModel{ContactWhatsApp: "51987654321", ContactWhatsAppMessage: tt.msg}
			if got := m.WhatsAppURL(); got != tt.want {
				t.Errorf("WhatsAppURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
