package dto

import (
	"strings"

	"actech_backend/internals/features/site/settings/model"
	helper "actech_backend/internals/helpers"
)

// ContactInfoDTO: kolom tersimpan + URL WhatsApp turunan.
type ContactInfoDTO struct {
	model.ContactInfoModel
	ContactWhatsAppURL string `json:"contact_whatsapp_url"`
}

func ToContactInfoDTO(m model.ContactInfoModel) ContactInfoDTO {
	return ContactInfoDTO{
		ContactInfoModel:   m,
		ContactWhatsAppURL: m.WhatsAppURL(),
	}
}

type ContactInfoForm struct {
	ContactPhone           string `json:"contact_phone" form:"contact_phone" validate:"required,max=17,phone"`
	ContactEmail           string `json:"contact_email" form:"contact_email" validate:"required,email"`
	ContactWhatsApp        string `json:"contact_whatsapp" form:"contact_whatsapp" validate:"required,max=17,phone"`
	ContactWhatsAppMessage string `json:"contact_whatsapp_message" form:"contact_whatsapp_message" validate:"required"`
	ContactFacebook        string `json:"contact_facebook" form:"contact_facebook" validate:"omitempty,http_url"`
	ContactInstagram       string `json:"contact_instagram" form:"contact_instagram" validate:"omitempty,http_url"`
	ContactLinkedIn        string `json:"contact_linkedin" form:"contact_linkedin" validate:"omitempty,http_url"`
	ContactYouTube         string `json:"contact_youtube" form:"contact_youtube" validate:"omitempty,http_url"`
	ContactAddress         string `json:"contact_address" form:"contact_address"`
	ContactCity            string `json:"contact_city" form:"contact_city" validate:"max=100"`
}

func ContactInfoFormFromModel(m model.ContactInfoModel) ContactInfoForm {
	return ContactInfoForm{
		ContactPhone:           m.ContactPhone,
		ContactEmail:           m.ContactEmail,
		ContactWhatsApp:        m.ContactWhatsApp,
		ContactWhatsAppMessage: m.ContactWhatsAppMessage,
		ContactFacebook:        m.ContactFacebook,
		ContactInstagram:       m.ContactInstagram,
		ContactLinkedIn:        m.ContactLinkedIn,
		ContactYouTube:         m.ContactYouTube,
		ContactAddress:         m.ContactAddress,
		ContactCity:            m.ContactCity,
	}
}

func (f *ContactInfoForm) Normalize() {
	f.ContactPhone = strings.TrimSpace(f.ContactPhone)
	f.ContactEmail = strings.TrimSpace(f.ContactEmail)
	// nomor WhatsApp disimpan tanpa "+"
	f.ContactWhatsApp = strings.TrimPrefix(strings.TrimSpace(f.ContactWhatsApp), "+")
	f.ContactWhatsAppMessage = strings.TrimSpace(f.ContactWhatsAppMessage)
	f.ContactFacebook = strings.TrimSpace(f.ContactFacebook)
	f.ContactInstagram = strings.TrimSpace(f.ContactInstagram)
	f.ContactLinkedIn = strings.TrimSpace(f.ContactLinkedIn)
	f.ContactYouTube = strings.TrimSpace(f.ContactYouTube)
	f.ContactAddress = strings.TrimSpace(f.ContactAddress)
	f.ContactCity = strings.TrimSpace(f.ContactCity)
}

func (f *ContactInfoForm) Validate() map[string][]string {
	return helper.ValidateStruct(f)
}

func (f ContactInfoForm) ApplyTo(m *model.ContactInfoModel) {
	m.ContactPhone = f.ContactPhone
	m.ContactEmail = f.ContactEmail
	m.ContactWhatsApp = f.ContactWhatsApp
	m.ContactWhatsAppMessage = f.ContactWhatsAppMessage
	m.ContactFacebook = f.ContactFacebook
	m.ContactInstagram = f.ContactInstagram
	m.ContactLinkedIn = f.ContactLinkedIn
	m.ContactYouTube = f.ContactYouTube
	m.ContactAddress = f.ContactAddress
	m.ContactCity = f.ContactCity
}
