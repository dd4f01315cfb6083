package database

import (
	"gorm.io/gorm"
)

type Database struct {
	profileRepo        *ProfileRepo
	projectRepo        *ProjectRepo
	projectImageRepo   *ProjectImageRepo
	skillRepo          *SkillRepo
	experienceRepo     *ExperienceRepo
	educationRepo      *EducationRepo
	certificationRepo  *CertificationRepo
	certificateRepo    *CertificateRepo
	technologyRepo     *TechnologyRepo
	tagRepo            *TagRepo
	blogPostRepo       *BlogPostRepo
	testimonialRepo    *TestimonialRepo
	socialLinkRepo     *SocialLinkRepo
	contactMessageRepo *ContactMessageRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		profileRepo:        NewProfileRepo(db),
		projectRepo:        NewProjectRepo(db),
		projectImageRepo:   NewProjectImageRepo(db),
		skillRepo:          NewSkillRepo(db),
		experienceRepo:     NewExperienceRepo(db),
		educationRepo:      NewEducationRepo(db),
		certificationRepo:  NewCertificationRepo(db),
		certificateRepo:    NewCertificateRepo(db),
		technologyRepo:     NewTechnologyRepo(db),
		tagRepo:            NewTagRepo(db),
		blogPostRepo:       NewBlogPostRepo(db),
		testimonialRepo:    NewTestimonialRepo(db),
		socialLinkRepo:     NewSocialLinkRepo(db),
		contactMessageRepo: NewContactMessageRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectImageRepo() *ProjectImageRepo {
	return d.projectImageRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ExperienceRepo() *ExperienceRepo {
	return d.experienceRepo
}

func (d Database) EducationRepo() *EducationRepo {
	return d.educationRepo
}

func (d Database) CertificationRepo() *CertificationRepo {
	return d.certificationRepo
}

func (d Database) CertificateRepo() *CertificateRepo {
	return d.certificateRepo
}

func (d Database) TechnologyRepo() *TechnologyRepo {
	return d.technologyRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) TestimonialRepo() *TestimonialRepo {
	return d.testimonialRepo
}

func (d Database) SocialLinkRepo() *SocialLinkRepo {
	return d.socialLinkRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}
