package locale

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/tidwall/gjson"
)

// DefaultLanguage is used when no valid language cookie is present
const DefaultLanguage = "en"

// SupportedLanguages lists every language with a dictionary
var SupportedLanguages = []string{"en", "cs", "hr", "hu"}

//go:embed locales/*.json
var embedded embed.FS

// IsSupported reports whether code names a dictionary
func IsSupported(code string) bool {
	for _, lang := range SupportedLanguages {
		if lang == code {
			return true
		}
	}
	return false
}

// Store holds the translation dictionaries. It is filled once by Load and
// never mutated afterwards, so it is safe for concurrent readers.
type Store struct {
	dictionaries map[string]map[string]string
}

// NewStore loads the dictionaries compiled into the binary
func NewStore() (*Store, error) {
	return Load(embedded, "locales")
}

// Load reads <dir>/<lang>.json for every supported language. Nested objects
// are flattened to dotted keys, so {"nav":{"login":"Login"}} yields "nav.login".
func Load(fsys fs.FS, dir string) (*Store, error) {
	store := &Store{dictionaries: make(map[string]map[string]string, len(SupportedLanguages))}

	for _, lang := range SupportedLanguages {
		data, err := fs.ReadFile(fsys, dir+"/"+lang+".json")
		if err != nil {
			return nil, fmt.Errorf("failed to read %s dictionary: %w", lang, err)
		}
		if !gjson.ValidBytes(data) {
			return nil, fmt.Errorf("invalid JSON in %s dictionary", lang)
		}

		dict := make(map[string]string)
		flatten("", gjson.ParseBytes(data), dict)
		store.dictionaries[lang] = dict
	}

	return store, nil
}

func flatten(prefix string, node gjson.Result, out map[string]string) {
	node.ForEach(func(key, value gjson.Result) bool {
		path := key.String()
		if prefix != "" {
			path = prefix + "." + path
		}
		if value.IsObject() {
			flatten(path, value, out)
		} else {
			out[path] = value.String()
		}
		return true
	})
}

// T translates key into lang. Missing entries fall back to the default
// language, then to the key itself.
func (s *Store) T(lang, key string) string {
	if value, ok := s.dictionaries[lang][key]; ok {
		return value
	}
	if value, ok := s.dictionaries[DefaultLanguage][key]; ok {
		return value
	}
	return key
}

// Tf translates key and formats it with args
func (s *Store) Tf(lang, key string, args ...any) string {
	return fmt.Sprintf(s.T(lang, key), args...)
}

// Len returns the number of entries in lang's dictionary
func (s *Store) Len(lang string) int {
	return len(s.dictionaries[lang])
}
