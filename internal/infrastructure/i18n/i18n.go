package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sort"
	"text/template"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// ServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	ServiceContextKey = "i18n_service"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// catalog é o conjunto de mensagens de um idioma; mensagens com {{ }} já vêm compiladas
type catalog struct {
	messages  map[string]string
	templates map[string]*template.Template
}

// Service gerencia traduções e internacionalização.
// Os catálogos são carregados uma vez e só lidos depois; o serviço é seguro para uso concorrente.
type Service struct {
	catalogs        map[string]*catalog
	languages       []string
	defaultLanguage string
}

// NewService cria um novo serviço de i18n
// localesDir: diretório contendo os arquivos JSON de tradução (vazio usa os catálogos embutidos)
// defaultLang: idioma padrão (fallback)
func NewService(localesDir, defaultLang string) (*Service, error) {
	if localesDir == "" {
		sub, err := fs.Sub(embeddedLocales, "locales")
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded locales: %w", err)
		}
		return newServiceFromFS(sub, "embedded locales", defaultLang)
	}
	return newServiceFromFS(os.DirFS(localesDir), localesDir, defaultLang)
}

// NewEmbeddedService cria o serviço com os catálogos en e pt-BR embutidos no binário
func NewEmbeddedService(defaultLang string) (*Service, error) {
	return NewService("", defaultLang)
}

func newServiceFromFS(fsys fs.FS, source, defaultLang string) (*Service, error) {
	files, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", source)
	}

	s := &Service{
		catalogs:        make(map[string]*catalog, len(files)),
		defaultLanguage: defaultLang,
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		cat, err := parseCatalog(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		s.catalogs[lang] = cat
		s.languages = append(s.languages, lang)
	}
	sort.Strings(s.languages)

	if _, ok := s.catalogs[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

func parseCatalog(data []byte) (*catalog, error) {
	var messages map[string]string
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, err
	}

	cat := &catalog{
		messages:  messages,
		templates: make(map[string]*template.Template),
	}
	for key, message := range messages {
		if !strings.Contains(message, "{{") {
			continue
		}
		tmpl, err := template.New(key).Option("missingkey=zero").Parse(message)
		if err != nil {
			return nil, fmt.Errorf("key %s: %w", key, err)
		}
		cat.templates[key] = tmpl
	}
	return cat, nil
}

// T traduz uma chave para o idioma especificado, caindo para o idioma padrão e depois para a própria chave.
// Parâmetros são interpolados como templates Go ({{.Field}}).
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	cat, message, ok := s.lookup(lang, key)
	if !ok {
		cat, message, ok = s.lookup(s.defaultLanguage, key)
	}
	if !ok {
		return key
	}

	tmpl, isTemplate := cat.templates[key]
	if !isTemplate || len(params) == 0 {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}
	return buf.String()
}

func (s *Service) lookup(lang, key string) (*catalog, string, bool) {
	cat, ok := s.catalogs[lang]
	if !ok {
		return nil, "", false
	}
	message, ok := cat.messages[key]
	return cat, message, ok
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna os idiomas carregados, em ordem alfabética
func (s *Service) GetSupportedLanguages() []string {
	langs := make([]string, len(s.languages))
	copy(langs, s.languages)
	return langs
}

// IsLanguageSupported verifica se um idioma é suportado
func (s *Service) IsLanguageSupported(lang string) bool {
	_, ok := s.catalogs[lang]
	return ok
}
