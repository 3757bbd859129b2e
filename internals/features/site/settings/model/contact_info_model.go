package model

import "strings"

type ContactInfoModel struct {
	ContactSlot            string `gorm:"column:contact_slot;primaryKey;size:20" json:"-"`
	ContactPhone           string `gorm:"column:contact_phone;size:17;not null" json:"contact_phone"`
	ContactEmail           string `gorm:"column:contact_email;size:254;not null" json:"contact_email"`
	ContactWhatsApp        string `gorm:"column:contact_whatsapp;size:17;not null" json:"contact_whatsapp"`
	ContactWhatsAppMessage string `gorm:"column:contact_whatsapp_message;type:text" json:"contact_whatsapp_message"`
	ContactFacebook        string `gorm:"column:contact_facebook;type:text" json:"contact_facebook"`
	ContactInstagram       string `gorm:"column:contact_instagram;type:text" json:"contact_instagram"`
	ContactLinkedIn        string `gorm:"column:contact_linkedin;type:text" json:"contact_linkedin"`
	ContactYouTube         string `gorm:"column:contact_youtube;type:text" json:"contact_youtube"`
	ContactAddress         string `gorm:"column:contact_address;type:text" json:"contact_address"`
	ContactCity            string `gorm:"column:contact_city;size:100" json:"contact_city"`
}

func (ContactInfoModel) TableName() string {
	return "contact_infos"
}

func (m *ContactInfoModel) SlotColumn() string { return "contact_slot" }

func (m *ContactInfoModel) SetSlot(key string) { m.ContactSlot = key }

func (m *ContactInfoModel) ApplyDefaults() {
	m.ContactPhone = "+51015431138"
	m.ContactEmail = "informes@actechnology.com.pe"
	m.ContactWhatsApp = "51999999999"
	m.ContactWhatsAppMessage = "Hola, me gustaría más información sobre sus soluciones integrales."
}

// WhatsAppURL: https://wa.me/{nomor}?text={pesan}, spasi jadi %20.
func (m ContactInfoModel) WhatsAppURL() string {
	return "https://wa.me/" + m.ContactWhatsApp + "?text=" + quoteText(m.ContactWhatsAppMessage)
}

const upperHex = "0123456789ABCDEF"

// quoteText: percent-encode per byte UTF-8, kecuali huruf, angka, "_.-~" dan "/".
func quoteText(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9',
			c == '_', c == '.', c == '-', c == '~', c == '/':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperHex[c>>4])
			b.WriteByte(upperHex[c&15])
		}
	}
	return b.String()
}
