package domain

import "time"

type Status string

const (
	StatusReceived Status = "received"
	StatusInReview Status = "in_review"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

var validTransitions = map[Status][]Status{
	StatusReceived: {StatusInReview},
	StatusInReview: {StatusAccepted, StatusRejected},
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}

	return false
}

// Reference is one of the two fixed reference slots of the form.
type Reference struct {
	Name    string `firestore:"name" json:"name"`
	Company string `firestore:"company" json:"company"`
	Phone   string `firestore:"phone" json:"phone"`
}

// Attachment is a document already uploaded through the file storage
// collaborator; the form only carries the resulting URL and metadata.
type Attachment struct {
	URL         string `firestore:"url" json:"url"`
	Filename    string `firestore:"filename" json:"filename"`
	ContentType string `firestore:"contentType" json:"contentType"`
	Size        int64  `firestore:"size" json:"size"`
}

// FormState is the flat accumulated state of the application wizard. The
// validate tags are evaluated per wizard step, not all at once.
type FormState struct {
	// Step 1, personal info
	FullName string `firestore:"fullName" json:"fullName" validate:"required"`
	Email    string `firestore:"email" json:"email" validate:"required,email"`
	Phone    string `firestore:"phone" json:"phone" validate:"required"`
	City     string `firestore:"city" json:"city" validate:"required"`

	// Step 2, professional experience
	Position        string `firestore:"position" json:"position"`
	Branch          string `firestore:"branch" json:"branch"`
	YearsExperience string `firestore:"yearsExperience" json:"yearsExperience" validate:"required"`
	AvailableFrom   string `firestore:"availableFrom" json:"availableFrom" validate:"required"`

	// Step 3, education and skills
	Education  string   `firestore:"education" json:"education" validate:"required"`
	Experience string   `firestore:"experience" json:"experience" validate:"required"`
	Skills     []string `firestore:"skills" json:"skills"`

	// Step 4, documents
	CoverLetter string       `firestore:"coverLetter" json:"coverLetter" validate:"required"`
	Attachments []Attachment `firestore:"attachments" json:"attachments"`

	// Exactly two reference slots, editable by field only.
	References [2]Reference `firestore:"references" json:"references"`

	// Step 5, confirmation
	DataProcessingConsent  bool `firestore:"dataProcessingConsent" json:"dataProcessingConsent" validate:"eq=true"`
	BackgroundCheckConsent bool `firestore:"backgroundCheckConsent" json:"backgroundCheckConsent" validate:"eq=true"`
}

// NewFormState pre-fills the form from what is known about the actor.
// Anonymous applicants start from a blank form.
func NewFormState(name, email string) *FormState {
	return &FormState{
		FullName: name,
		Email:    email,
	}
}

// AddSkill appends a skill tag. Empty strings and exact duplicates are
// ignored, matching is case sensitive.
func (f *FormState) AddSkill(skill string) {
	if skill == "" {
		return
	}

	for _, s := range f.Skills {
		if s == skill {
			return
		}
	}

	f.Skills = append(f.Skills, skill)
}

// RemoveSkill removes the first exact match.
func (f *FormState) RemoveSkill(skill string) {
	for i, s := range f.Skills {
		if s == skill {
			f.Skills = append(f.Skills[:i], f.Skills[i+1:]...)
			return
		}
	}
}

// JobApplication is the persisted snapshot of a submitted form.
type JobApplication struct {
	ID        string    `firestore:"-" json:"id"`
	Form      FormState `firestore:"form" json:"form"`
	Status    Status    `firestore:"status" json:"status"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt,serverTimestamp" json:"updatedAt"`
}

type UpdateApplicationStatusRequest struct {
	Status Status `json:"status" binding:"required,oneof=in_review accepted rejected"`
}
