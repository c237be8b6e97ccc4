package drafts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/inquiry-desk/internal/catalog"
	"github.com/noah-isme/inquiry-desk/internal/models"
)

func newEngine() *Engine {
	return NewEngine(nil)
}

func TestStudentEmailUnavailableCredit(t *testing.T) {
	e := newEngine()

	got := e.StudentEmail(Input{Name: "", Program: UnavailableProgram, Campus: "Wilbur Wright", CreditType: models.CreditTypeCredit})

	assert.Contains(t, got, "not offering AI/Machine Learning credit courses until Fall 2026")
	assert.Contains(t, got, "Dear Student,")
	assert.Contains(t, got, "we’re launching a 14-month Continuing Education Program")
	assert.NotContains(t, got, "forwarded your information")
}

func TestStudentEmailUnavailableNonCredit(t *testing.T) {
	e := newEngine()

	got := e.StudentEmail(Input{Name: "Jordan", Program: UnavailableProgram, Campus: "Kennedy-King", CreditType: models.CreditTypeNonCredit})

	assert.True(t, strings.HasPrefix(got, "Subject: Your Inquiry Has Been Received—CCC Technology Programs\n\nDear Jordan,"))
	assert.Contains(t, got, "Starting in March, we will be launching")
	assert.NotContains(t, got, "Fall 2026")
}

func TestStudentEmailUnavailableNeverForwards(t *testing.T) {
	e := newEngine()

	for _, campus := range e.Catalog().Campuses() {
		for _, ct := range models.CreditTypes() {
			got := e.StudentEmail(Input{Name: "Sam", Program: UnavailableProgram, Campus: campus, CreditType: ct})
			assert.NotContains(t, got, "forwarded your information", "campus %s", campus)
		}
	}
}

func TestStudentEmailUndecided(t *testing.T) {
	e := newEngine()

	got := e.StudentEmail(Input{Name: "Riley", Program: "Cloud", Campus: catalog.Undecided, CreditType: models.CreditTypeCredit})

	assert.Contains(t, got, "Since you selected Cloud and are undecided on the Campus here are the schools that offer Cloud:\n\nHarry S Truman, Wilbur Wright\n\nIf you are interested")
	assert.Equal(t, VariantUndecided, e.StudentVariant(Input{Program: "Cloud", Campus: catalog.Undecided}))
}

func TestStudentEmailUndecidedNoneOffering(t *testing.T) {
	e := newEngine()

	got := e.StudentEmail(Input{Name: "Riley", Program: "Data Analytics", Campus: catalog.Undecided, CreditType: models.CreditTypeCredit})

	assert.Contains(t, got, "\n\nNone currently\n\n")
}

func TestStudentEmailForwarded(t *testing.T) {
	e := newEngine()

	got := e.StudentEmail(Input{Name: "Avery", Program: "Game Design", Campus: "Kennedy-King", CreditType: models.CreditTypeCredit})

	want := strings.Join([]string{
		"Subject: Your Inquiry Has Been Received—CCC Technology Programs",
		"Dear Avery,",
		"Thank you for your interest in the CCC Center for Information Technologies! We're excited to help you explore technology programs at the City Colleges of Chicago.",
		"To best support you, we've forwarded your information to Kennedy-King College. A representative from that campus will be reaching out to you shortly.",
		"In the meantime, feel free to explore our programs here:\nAcademic Catalog:  https://catalog.ccc.edu/programs/#filter=.filter_3\nCE Class Search:  https://apps.ccc.edu/scheduling/continuinged/",
		"Best regards,\nTech@CCC.edu Team",
	}, "\n\n")
	assert.Equal(t, want, got)
}

func TestStudentEmailNotOffered(t *testing.T) {
	e := newEngine()

	got := e.StudentEmail(Input{Name: "Casey", Program: "Game Design", Campus: "Malcolm X", CreditType: models.CreditTypeCredit})

	assert.Contains(t, got, "Unfortunately we are not offering Game Design at Malcolm X.")
	assert.Contains(t, got, "However, Game Design is offered at the following campuses:\n\nKennedy-King\n\n")
	assert.True(t, strings.HasSuffix(got, "feel free to reach out — we're here to help!\n\nBest regards,\nTech@CCC.edu Team"))
}

func TestAdvisorEmailOffered(t *testing.T) {
	e := newEngine()

	got := e.AdvisorEmail(Input{Name: "Avery", Program: "Cloud", Campus: "Harry S Truman", CreditType: models.CreditTypeNonCredit})

	want := "To: Laura Smith <Lsmith3@ccc.edu>\n" +
		"Subject: Student Inquiry - Cloud (Non-Credit) | Avery\n\n" +
		"Hello Laura Smith,\n\n" +
		"A prospective student submitted interest in your Cloud program.\n\n" +
		"Please follow up as appropriate.\n\n" +
		"Best regards,\nCoET Team"
	assert.Equal(t, want, got)
}

func TestAdvisorEmailNotOfferedUsesFallbackAddressee(t *testing.T) {
	e := newEngine()

	got := e.AdvisorEmail(Input{Name: "", Program: "Cloud", Campus: "[Campus]", CreditType: models.CreditTypeCredit})

	assert.True(t, strings.HasPrefix(got, "To: [Campus] Advising Team\nSubject: Student Inquiry - Cloud (Credit) | \n\n"))
	assert.Contains(t, got, "Since Cloud is not offered at [Campus], we are sharing this inquiry for your awareness.")
}

func TestAdvisorEmailUndecidedHasNoAddress(t *testing.T) {
	e := newEngine()

	got := e.AdvisorEmail(Input{Name: "Pat", Program: "Cloud", Campus: catalog.Undecided, CreditType: models.CreditTypeCredit})

	assert.True(t, strings.HasPrefix(got, "To: Advising Team\n"))
}

func TestRenderVariantsMatchOffering(t *testing.T) {
	e := newEngine()
	c := e.Catalog()

	for _, campus := range c.Campuses() {
		for _, program := range c.Programs() {
			if program == UnavailableProgram || campus == catalog.Undecided {
				continue
			}
			d := e.Render(Input{Name: "Kim", Program: program, Campus: campus, CreditType: models.CreditTypeCredit})
			if c.Offers(campus, program) {
				assert.Equal(t, VariantForwarded, d.Variant)
				assert.True(t, d.OfferedHere)
				assert.Contains(t, d.Student, "forwarded your information to "+campus+" College")
				assert.Contains(t, d.Advisor, "Please follow up as appropriate.")
			} else {
				assert.Equal(t, VariantNotOffered, d.Variant)
				assert.False(t, d.OfferedHere)
				assert.Contains(t, d.Advisor, "for your awareness")
			}
			assert.NotEqual(t, "To: ", strings.SplitN(d.Advisor, "\n", 2)[0])
		}
	}
}

func TestNormalize(t *testing.T) {
	in := Normalize("  ", "", "", "")

	assert.Equal(t, Input{
		Name:       DefaultName,
		Program:    PlaceholderProgram,
		Campus:     PlaceholderCampus,
		CreditType: PlaceholderCredit,
	}, in)

	in = Normalize(" Dana ", "Cloud", "Wilbur Wright", models.CreditTypeCredit)
	assert.Equal(t, "Dana", in.Name)
	assert.Equal(t, "Cloud", in.Program)
}

func TestRenderIsDeterministic(t *testing.T) {
	e := newEngine()
	in := Input{Name: "Lee", Program: "Networking", Campus: "Olive-Harvey", CreditType: models.CreditTypeCredit}

	assert.Equal(t, e.Render(in), e.Render(in))
}
