// Package content holds the records the site is rendered from and the
// loaders that read them. Records are loaded once per build and never
// modified afterwards.
package content

// NewsItem is an announcement shown in the news sections.
type NewsItem struct {
	Title   string `yaml:"title" json:"title"`
	Date    string `yaml:"date" json:"date"`
	Content string `yaml:"content" json:"content"`
	ImgPath string `yaml:"img_path" json:"img_path"`
	URL     string `yaml:"url" json:"url"`
	URLText string `yaml:"urlText" json:"urlText"`
}

// GalleryItem is a photo with a caption.
type GalleryItem struct {
	Title       string `yaml:"title" json:"title"`
	DateShown   string `yaml:"date_shown" json:"date_shown"`
	Description string `yaml:"description" json:"description"`
	ImgPath     string `yaml:"img_path" json:"img_path"`
	URL         string `yaml:"url" json:"url"`
}

// Project is a finished or ongoing project.
type Project struct {
	Name          string `yaml:"name" json:"name"`
	DateStarted   string `yaml:"date_started" json:"date_started"`
	DateCompleted string `yaml:"date_completed" json:"date_completed"`
	Description   string `yaml:"description" json:"description"`
	ImgPath       string `yaml:"img_path" json:"img_path"`
	URL           string `yaml:"url" json:"url"`
	URLText       string `yaml:"urlText" json:"urlText"`
}

// Social is one social-media link of an officer.
type Social struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// Officer is a member of the organization's roster.
type Officer struct {
	Name        string   `yaml:"name" json:"name"`
	Position    string   `yaml:"position" json:"position"`
	Email       string   `yaml:"email" json:"email"`
	Socials     []Social `yaml:"socials" json:"socials"`
	Description string   `yaml:"description" json:"description"`
	ImgPath     string   `yaml:"img_path" json:"img_path"`
	IsDev       bool     `yaml:"is_dev" json:"is_dev"`
}

// Featured is a single carousel slide.
type Featured struct {
	Title   string `yaml:"title" json:"title"`
	Caption string `yaml:"caption" json:"caption"`
	ImgPath string `yaml:"img_path" json:"img_path"`
	URL     string `yaml:"url" json:"url"`
}

// Collections is every array the site is rendered from.
type Collections struct {
	News         []NewsItem    `yaml:"news" json:"news"`
	HomeNews     []NewsItem    `yaml:"home_news" json:"homeNews"`
	Gallery      []GalleryItem `yaml:"gallery" json:"gallery"`
	HomeGallery  []GalleryItem `yaml:"home_gallery" json:"homeGallery"`
	ProjectsDone []Project     `yaml:"projects_done" json:"projectsDone"`
	HomeProjects []Project     `yaml:"home_projects" json:"homeProjects"`
	Officers     []Officer     `yaml:"officers" json:"officers"`
	Featured     []Featured    `yaml:"featured" json:"featured"`
}

// Subtitle is the "started - completed" range shown under a project's name.
func (p Project) Subtitle() string {
	completed := p.DateCompleted
	if completed == "" {
		completed = "Present"
	}
	return p.DateStarted + " - " + completed
}
