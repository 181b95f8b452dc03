package catalog

// Tier places a project in the unlock progression.
type Tier string

const (
	TierPrimary   Tier = "primary"   // Flagship work, explorable from the start
	TierSecondary Tier = "secondary" // Supporting work, revealed once every flagship is explored
)

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	return t == TierPrimary || t == TierSecondary
}

// Label returns the display label for a tier.
func (t Tier) Label() string {
	switch t {
	case TierPrimary:
		return "Flagship"
	case TierSecondary:
		return "Supporting"
	default:
		return string(t)
	}
}

// Project is a single showcased piece of work. Its title is its identity.
type Project struct {
	Title  string   `json:"title"`
	Tier   Tier     `json:"tier"`
	Desc   string   `json:"desc"`
	Stack  []string `json:"stack"`
	GitHub string   `json:"github"`
	Live   string   `json:"live"`
}

// ID returns the key used to track exploration of the project.
func (p Project) ID() string {
	return p.Title
}

// Owner describes the person the portfolio belongs to.
type Owner struct {
	Name     string   `json:"name"`
	Initials string   `json:"initials"`
	Roles    []string `json:"roles"`
}

// About is the "What I Do" copy. Emphasis lists phrases highlighted inside the paragraphs.
type About struct {
	Heading    string   `json:"heading"`
	Paragraphs []string `json:"paragraphs"`
	Emphasis   []string `json:"emphasis"`
}

// Capability is one card in the capability grid.
type Capability struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Credential is a diploma or certificate.
type Credential struct {
	Issuer string `json:"issuer"`
	Title  string `json:"title"`
	Date   string `json:"date,omitempty"`
	Link   string `json:"link,omitempty"`
}

// Social is an external profile link.
type Social struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Contact is the closing call-to-action panel.
type Contact struct {
	Kicker    string `json:"kicker"`
	Headline  string `json:"headline"`
	Blurb     string `json:"blurb"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	Copyright string `json:"copyright"`
}

// Portfolio is the full static content document.
type Portfolio struct {
	Owner        Owner        `json:"owner"`
	About        About        `json:"about"`
	Capabilities []Capability `json:"capabilities"`
	Projects     []Project    `json:"projects"`
	Tech         []string     `json:"tech"`
	Credentials  []Credential `json:"credentials"`
	Socials      []Social     `json:"socials"`
	Contact      Contact      `json:"contact"`

	catalog *Catalog
}

// Catalog returns the ordered project catalog built from Projects.
func (p *Portfolio) Catalog() *Catalog {
	return p.catalog
}
