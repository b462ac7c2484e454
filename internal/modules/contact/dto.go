package contact

// ContactDTO is a contact-form submission.
type ContactDTO struct {
	Name        string `json:"name"        binding:"required,min=2"`
	Email       string `json:"email"       binding:"required,email"`
	Phone       string `json:"phone"`
	InquiryType string `json:"inquiryType" binding:"required,oneof=buy sell rent other"`
	Message     string `json:"message"     binding:"required,min=10"`
}
