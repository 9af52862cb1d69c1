package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"github.com/titanous/json5"
)

const DatabaseEnv = "DATABASE_CONNECTION_STRING"

type Config struct {
	// Catalog site, e.g. http://catalog.rpi.edu
	BaseUrl string `json:"base_url"`
	// Index page path; %d is replaced by the page number
	IndexPath string `json:"index_path"`
	// Course page path; %v is replaced by the course id
	CoursePath string `json:"course_path"`
	// First submatch is the course id
	CourseIdPattern string `json:"course_id_pattern"`
	// Selector of the element holding a course's text
	FragmentSelector string `json:"fragment_selector"`
	// Navigation text dropped from the start and end of each page
	SkipHead int `json:"skip_head"`
	SkipTail int `json:"skip_tail"`
	// Stop discovery after this many index pages; 0 is unlimited
	MaxPages int `json:"max_pages"`

	Concurrency int      `json:"concurrency"`
	Timeout     Duration `json:"timeout"`
	Retries     int      `json:"retries"`
	UserAgent   string   `json:"user_agent"`

	Output   string `json:"output"`
	Database string `json:"database"`
}

// Duration reads "30s" style strings.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = duration
	return nil
}

func Default() Config {
	return Config{
		BaseUrl:          "http://catalog.rpi.edu",
		IndexPath:        "/content.php?navoid=444&filter[cpage]=%d",
		CoursePath:       "/preview_course.php?coid=%v",
		CourseIdPattern:  `preview_course[^"']*coid=(\d+)`,
		FragmentSelector: "td.block_content_popup",
		SkipHead:         4,
		SkipTail:         5,
		Concurrency:      8,
		Timeout:          Duration{30 * time.Second},
		Retries:          2,
		UserAgent:        "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
		Output:           "catalog.json",
	}
}

func splitExt(f string) (string, string) {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i] == '.' {
			return f[0:i], f[i+1:]
		}
	}
	return f, ""
}

func readJson5(name string, out *Config) (bool, error) {
	content, err := os.ReadFile(name)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(content) == 0 {
		return false, nil
	}
	if err := json5.Unmarshal(content, out); err != nil {
		return false, fmt.Errorf("parse %v: %w", name, err)
	}
	return true, nil
}

// Read merges, from lowest to highest priority, the defaults, <name>.<ext>,
// <name>.local.<ext> and the database connection string from the
// environment (a .env file next to the config is loaded first). Missing
// files are skipped.
func Read(name string) (Config, error) {
	out := Default()

	dirname := filepath.Dir(name)
	prefixname, ext := splitExt(filepath.Base(name))
	localname := filepath.Join(dirname, fmt.Sprintf("%s.local.%s", prefixname, ext))

	for _, file := range []string{name, localname} {
		// Keys absent from the file keep their current value, so explicit
		// zeros like retries: 0 still win the merge.
		override := out
		found, err := readJson5(file, &override)
		if err != nil {
			return out, err
		}
		if !found {
			continue
		}
		if err := mergo.Merge(&out, override, mergo.WithOverride, mergo.WithOverwriteWithEmptyValue); err != nil {
			return out, err
		}
	}

	envname := filepath.Join(dirname, ".env")
	if err := godotenv.Load(envname); err != nil && !os.IsNotExist(err) {
		return out, fmt.Errorf("load %v: %w", envname, err)
	}
	if database := os.Getenv(DatabaseEnv); database != "" {
		out.Database = database
	}

	return out, nil
}

func (c Config) IndexUrl(page int) string {
	return c.BaseUrl + fmt.Sprintf(c.IndexPath, page)
}

func (c Config) CourseUrl(id string) string {
	return c.BaseUrl + fmt.Sprintf(c.CoursePath, id)
}
