package types

type NavbarData struct {
	IsAuthenticated bool
	IsAdmin         bool
	UserName        string
	UserEmail       string
}

type NavbarDataSetter interface {
	SetNavbarData(data NavbarData)
}

type BasePageData struct {
	Title  string
	Navbar NavbarData
}

func (d *BasePageData) SetNavbarData(data NavbarData) {
	d.Navbar = data
}

type HomePageData struct {
	BasePageData
	Notice string
	Error  string
}

type LoginPageData struct {
	BasePageData
	Email string
	Role  string
	Error string
}

type DashboardPageData struct {
	BasePageData
	Cases  []*CaseReport
	Stats  Stats
	Notice string
}

type ReportChooserPageData struct {
	BasePageData
}

// ReportFormPageData carries one category form back to the page, including
// per-field errors and the previously entered values on validation failure.
type ReportFormPageData struct {
	BasePageData
	CaseType    CaseType
	Form        any
	FieldErrors map[string]string
	Error       string
	Options     map[string][]string
	Submitted   bool
}

type CaseManagementPageData struct {
	BasePageData
	Cases          []*CaseReport
	Total          int
	Query          string
	StatusFilter   string
	TypeFilter     string
	PriorityFilter string
	Notice         string
	Error          string
}

type AnalyticsPageData struct {
	BasePageData
	Stats      Stats
	TimeFilter string
	Cases      []*CaseReport
}
