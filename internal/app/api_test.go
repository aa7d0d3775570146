package app_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/app"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/infrastructure/config"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/infrastructure/logging"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/infrastructure/persistence/gormrepo"
)

func testConfig(enforceRoles bool) *config.Config {
	return &config.Config{
		Env:    "test",
		Server: config.ServerConfig{BaseURL: "http://vidaplus.test"},
		JWT: config.JWTConfig{
			Secret:       "segredo-de-teste",
			Issuer:       "vidaplus",
			AccessExpiry: time.Hour,
		},
		Authz:    config.AuthzConfig{EnforceRoles: enforceRoles},
		Password: config.PasswordConfig{BcryptCost: bcrypt.MinCost},
		Logging:  config.LoggingConfig{Level: "error"},
		CORS:     config.CORSConfig{AllowedOrigins: "*"},
		I18n:     config.I18nConfig{DefaultLanguage: "pt-BR"},
	}
}

type client struct {
	router http.Handler
	token  string
}

func (c *client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		Expect(json.NewEncoder(&payload).Encode(body)).To(Succeed())
	}

	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	Expect(json.Unmarshal(w.Body.Bytes(), &body)).To(Succeed())
	return body
}

func decodeList(w *httptest.ResponseRecorder) []map[string]interface{} {
	var body []map[string]interface{}
	Expect(json.Unmarshal(w.Body.Bytes(), &body)).To(Succeed())
	return body
}

func count(db *gorm.DB, table string) int64 {
	var n int64
	Expect(db.Table(table).Count(&n).Error).To(Succeed())
	return n
}

var _ = Describe("VidaPlus API", func() {
	var (
		db  *gorm.DB
		api *client
	)

	setup := func(enforceRoles bool) {
		var err error
		db, err = gormrepo.NewInMemoryDatabase("api_" + uuid.NewString())
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		})

		application, err := app.New(testConfig(enforceRoles), db, logging.NewNopLogger())
		Expect(err).NotTo(HaveOccurred())
		api = &client{router: application.Router}
	}

	login := func(email, password string) string {
		w := api.do(http.MethodPost, "/auth/login", map[string]string{"email": email, "password": password})
		Expect(w.Code).To(Equal(http.StatusOK))
		token, _ := decode(w)["access_token"].(string)
		Expect(token).NotTo(BeEmpty())
		return token
	}

	signupAndLogin := func(email, role string) string {
		body := map[string]string{"email": email, "password": "p1"}
		if role != "" {
			body["role"] = role
		}
		Expect(api.do(http.MethodPost, "/auth/signup", body).Code).To(Equal(http.StatusCreated))
		return login(email, "p1")
	}

	Context("with roles advisory", func() {
		BeforeEach(func() {
			setup(false)
		})

		It("serves the health check without authentication", func() {
			w := api.do(http.MethodGet, "/health", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"status":"ok"}`))
		})

		It("runs the signup, login and patient registration flow", func() {
			w := api.do(http.MethodPost, "/auth/signup", map[string]string{"email": "a@x.com", "password": "p1"})
			Expect(w.Code).To(Equal(http.StatusCreated))
			user := decode(w)["user"].(map[string]interface{})
			Expect(user["role"]).To(Equal("PATIENT"))
			Expect(user["email"]).To(Equal("a@x.com"))

			token := login("a@x.com", "p1")

			w = api.do(http.MethodGet, "/pacientes", nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))

			api.token = token
			patient := map[string]string{"nome": "Ana", "cpf": "111.111.111-11"}
			w = api.do(http.MethodPost, "/pacientes", patient)
			Expect(w.Code).To(Equal(http.StatusCreated))
			created := decode(w)
			Expect(created["id"]).NotTo(BeEmpty())
			Expect(created["data_nascimento"]).To(BeNil())

			w = api.do(http.MethodPost, "/pacientes", patient)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/problem+json"))
			Expect(decode(w)["type"]).To(Equal("http://vidaplus.test/problems/conflict"))
			Expect(count(db, "patients")).To(Equal(int64(1)))

			w = api.do(http.MethodGet, "/pacientes/"+created["id"].(string), nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["nome"]).To(Equal("Ana"))
		})

		It("never returns the password hash on signup", func() {
			w := api.do(http.MethodPost, "/auth/signup", map[string]string{"email": "b@x.com", "password": "segredo"})
			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(w.Body.String()).NotTo(ContainSubstring("$2a$"))
			Expect(w.Body.String()).NotTo(ContainSubstring("password"))
			Expect(w.Body.String()).NotTo(ContainSubstring("segredo"))
		})

		It("rejects a duplicate email whatever the password or role", func() {
			Expect(api.do(http.MethodPost, "/auth/signup", map[string]string{"email": "c@x.com", "password": "p1"}).Code).
				To(Equal(http.StatusCreated))

			w := api.do(http.MethodPost, "/auth/signup", map[string]string{"email": "c@x.com", "password": "outra", "role": "ADMIN"})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["message"]).NotTo(BeEmpty())
			Expect(count(db, "users")).To(Equal(int64(1)))
		})

		It("answers a wrong password and an unknown email identically", func() {
			Expect(api.do(http.MethodPost, "/auth/signup", map[string]string{"email": "d@x.com", "password": "p1"}).Code).
				To(Equal(http.StatusCreated))

			wrong := api.do(http.MethodPost, "/auth/login", map[string]string{"email": "d@x.com", "password": "errada"})
			unknown := api.do(http.MethodPost, "/auth/login", map[string]string{"email": "ninguem@x.com", "password": "p1"})

			Expect(wrong.Code).To(Equal(http.StatusUnauthorized))
			Expect(unknown.Code).To(Equal(wrong.Code))
			Expect(unknown.Body.String()).To(MatchJSON(wrong.Body.String()))
		})

		It("rejects missing login fields with 400", func() {
			w := api.do(http.MethodPost, "/auth/login", map[string]string{"email": "d@x.com"})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		DescribeTable("protected routes without a token return 401 and write nothing",
			func(method, path string, body interface{}) {
				w := api.do(method, path, body)
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(decode(w)["message"]).NotTo(BeEmpty())
				Expect(count(db, "patients")).To(BeZero())
				Expect(count(db, "professionals")).To(BeZero())
				Expect(count(db, "consultations")).To(BeZero())
			},
			Entry("POST /pacientes", http.MethodPost, "/pacientes", map[string]string{"nome": "Ana", "cpf": "1"}),
			Entry("GET /pacientes", http.MethodGet, "/pacientes", nil),
			Entry("GET /pacientes/:id", http.MethodGet, "/pacientes/x", nil),
			Entry("POST /profissionais", http.MethodPost, "/profissionais", map[string]string{"nome": "Dr. Rui"}),
			Entry("GET /profissionais", http.MethodGet, "/profissionais", nil),
			Entry("POST /consultas", http.MethodPost, "/consultas", map[string]string{"paciente_id": "p"}),
			Entry("GET /consultas", http.MethodGet, "/consultas", nil),
		)

		It("rejects a malformed Authorization header", func() {
			req := httptest.NewRequest(http.MethodGet, "/pacientes", nil)
			req.Header.Set("Authorization", "Token abc")
			w := httptest.NewRecorder()
			api.router.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("answers unknown routes with a 404 problem", func() {
			w := api.do(http.MethodGet, "/nao-existe", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/problem+json"))
		})

		It("exposes prometheus metrics", func() {
			api.do(http.MethodGet, "/health", nil)
			w := api.do(http.MethodGet, "/metrics", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("http_requests_total"))
		})

		Describe("consultas", func() {
			var pacienteA, pacienteB, profissionalID string

			create := func(path string, body interface{}) string {
				w := api.do(http.MethodPost, path, body)
				Expect(w.Code).To(Equal(http.StatusCreated), w.Body.String())
				return decode(w)["id"].(string)
			}

			BeforeEach(func() {
				api.token = signupAndLogin("medico@x.com", "PROFESSIONAL")
				pacienteA = create("/pacientes", map[string]string{"nome": "Ana", "cpf": "111"})
				pacienteB = create("/pacientes", map[string]string{"nome": "Bia", "cpf": "222"})
				profissionalID = create("/profissionais", map[string]string{"nome": "Dr. Rui", "especialidade": "cardiologia"})
			})

			consultation := func(pacienteID, via string) map[string]string {
				return map[string]string{
					"paciente_id":     pacienteID,
					"profissional_id": profissionalID,
					"data_hora":       "2025-01-25T14:00:00",
					"via":             via,
				}
			}

			It("defaults the status to agendada", func() {
				w := api.do(http.MethodPost, "/consultas", consultation(pacienteA, "teleconsulta"))
				Expect(w.Code).To(Equal(http.StatusCreated))
				body := decode(w)
				Expect(body["status"]).To(Equal("agendada"))
				Expect(body["motivo"]).To(BeNil())

				w = api.do(http.MethodGet, "/consultas/"+body["id"].(string), nil)
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(decode(w)["via"]).To(Equal("teleconsulta"))
			})

			It("rejects an unknown via and persists nothing", func() {
				w := api.do(http.MethodPost, "/consultas", consultation(pacienteA, "remoto"))
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decode(w)["errors"]).NotTo(BeEmpty())
				Expect(count(db, "consultations")).To(BeZero())
			})

			It("returns 404 for an unknown patient and persists nothing", func() {
				w := api.do(http.MethodPost, "/consultas", consultation(uuid.NewString(), "presencial"))
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(count(db, "consultations")).To(BeZero())
			})

			It("filters the list by patient exactly", func() {
				create("/consultas", consultation(pacienteA, "presencial"))
				create("/consultas", consultation(pacienteB, "presencial"))
				create("/consultas", consultation(pacienteA, "teleconsulta"))

				w := api.do(http.MethodGet, "/consultas?paciente_id="+pacienteA, nil)
				Expect(w.Code).To(Equal(http.StatusOK))
				list := decodeList(w)
				Expect(list).To(HaveLen(2))
				for _, item := range list {
					Expect(item["paciente_id"]).To(Equal(pacienteA))
				}

				w = api.do(http.MethodGet, "/consultas", nil)
				Expect(decodeList(w)).To(HaveLen(3))

				w = api.do(http.MethodGet, "/consultas?paciente_id="+uuid.NewString(), nil)
				Expect(w.Body.String()).To(MatchJSON(`[]`))
			})
		})
	})

	Context("with roles enforced", func() {
		BeforeEach(func() {
			setup(true)
		})

		It("forbids a patient from registering professionals", func() {
			api.token = signupAndLogin("paciente@x.com", "")
			w := api.do(http.MethodPost, "/profissionais", map[string]string{"nome": "Dr. Rui"})
			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(count(db, "professionals")).To(BeZero())
		})

		It("lets an admin register professionals", func() {
			api.token = signupAndLogin("admin@x.com", "ADMIN")
			w := api.do(http.MethodPost, "/profissionais", map[string]string{"nome": "Dr. Rui"})
			Expect(w.Code).To(Equal(http.StatusCreated))
		})
	})
})
