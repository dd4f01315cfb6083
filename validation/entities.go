package validation

import "github.com/pranavratheesh/portfolio-backend/models"

// ValidateContactMessage guards the one public submission path
func ValidateContactMessage(m *models.ContactMessage) error {
	var v Violations
	v.requireText("name", m.Name)
	v.requireEmail("email", m.Email)
	v.requireText("message", m.Message)
	if m.Message != "" {
		v.minLength("message", m.Message, minFreeTextLen)
	}
	return v.OrNil()
}

func ValidateProfile(p *models.Profile) error {
	var v Violations
	v.requireText("title", p.Title)
	v.requireEmail("email", p.Email)
	return v.OrNil()
}

func ValidateProject(p *models.Project) error {
	var v Violations
	v.requireText("title", p.Title)
	v.requireText("description", p.Description)
	v.maxLength("short_description", p.ShortDescription, 300)
	return v.OrNil()
}

func ValidateProjectImage(i *models.ProjectImage) error {
	var v Violations
	v.requireText("image", i.Image)
	return v.OrNil()
}

func ValidateSkill(s *models.Skill) error {
	var v Violations
	v.requireText("name", s.Name)
	v.intRange("proficiency", s.Proficiency, 1, 100)
	return v.OrNil()
}

func ValidateExperience(e *models.Experience) error {
	var v Violations
	v.requireText("title", e.Title)
	v.requireText("company", e.Company)
	if e.StartDate.IsZero() {
		v.add("start_date", RuleRequired, "start_date is required")
	}
	v.currentOrEnded(e.Current, e.EndDate, "position")
	v.dateOrder("start_date", "end_date", e.StartDate, e.EndDate)
	return v.OrNil()
}

func ValidateEducation(e *models.Education) error {
	var v Violations
	v.requireText("institution", e.Institution)
	v.requireText("degree", e.Degree)
	if e.StartDate.IsZero() {
		v.add("start_date", RuleRequired, "start_date is required")
	}
	v.currentOrEnded(e.Current, e.EndDate, "education")
	v.dateOrder("start_date", "end_date", e.StartDate, e.EndDate)
	return v.OrNil()
}

func ValidateCertification(c *models.Certification) error {
	var v Violations
	v.requireText("title", c.Title)
	v.requireText("issuer", c.Issuer)
	return v.OrNil()
}

func ValidateCertificate(c *models.Certificate) error {
	var v Violations
	v.requireText("name", c.Name)
	v.requireText("issuing_organization", c.IssuingOrganization)
	if c.IssueDate.IsZero() {
		v.add("issue_date", RuleRequired, "issue_date is required")
	}
	v.dateOrder("issue_date", "expiration_date", c.IssueDate, c.ExpirationDate)
	return v.OrNil()
}

func ValidateTechnology(t *models.Technology) error {
	var v Violations
	v.requireText("name", t.Name)
	return v.OrNil()
}

func ValidateTag(t *models.Tag) error {
	var v Violations
	v.requireText("name", t.Name)
	v.slug("slug", t.Slug)
	return v.OrNil()
}

func ValidateBlogPost(b *models.BlogPost) error {
	var v Violations
	v.requireText("title", b.Title)
	v.requireText("content", b.Content)
	v.slug("slug", b.Slug)
	v.maxLength("excerpt", b.Excerpt, 300)
	if b.Status != models.BlogPostStatusDraft && b.Status != models.BlogPostStatusPublished {
		v.add("status", RuleInvalidFormat, "status must be draft or published")
	}
	return v.OrNil()
}

func ValidateTestimonial(t *models.Testimonial) error {
	var v Violations
	v.requireText("client_name", t.ClientName)
	v.requireText("content", t.Content)
	v.intRange("rating", t.Rating, 1, 5)
	return v.OrNil()
}

func ValidateSocialLink(s *models.SocialLink) error {
	var v Violations
	v.requireText("platform", s.Platform)
	v.requireText("url", s.URL)
	return v.OrNil()
}
