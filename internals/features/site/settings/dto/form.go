package dto

// Form dipakai controller singleton: body di-merge ke nilai tersimpan,
// lalu Normalize dan Validate dijalankan atas hasil merge.
type Form interface {
	Normalize()
	Validate() map[string][]string
}
