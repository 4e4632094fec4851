package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagList_Unmarshal(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want TagList
	}{
		{name: "array", raw: `["Corporate"," Gala ",""]`, want: TagList{"Corporate", "Gala"}},
		{name: "comma_string", raw: `"Corporate, Gala,,"`, want: TagList{"Corporate", "Gala"}},
		{name: "blank_string", raw: `"  "`, want: TagList{}},
		{name: "null", raw: `null`, want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var v struct {
				Tags TagList `json:"tags"`
			}
			require.NoError(t, json.Unmarshal([]byte(`{"tags":`+tc.raw+`}`), &v))
			assert.Equal(t, tc.want, v.Tags)
		})
	}
}

func TestLineList_Unmarshal(t *testing.T) {
	var l LineList
	require.NoError(t, json.Unmarshal([]byte(`"Theming\n\n AV, lighting \n"`), &l))
	assert.Equal(t, LineList{"Theming", "AV, lighting"}, l, "commas stay inside a line")
}

func TestLineList_RejectsOtherTypes(t *testing.T) {
	var l LineList
	assert.Error(t, json.Unmarshal([]byte(`42`), &l))
}

type bindSample struct {
	Name  string  `json:"name" binding:"required,max=5"`
	Email string  `json:"email" binding:"required,email"`
	Phone *string `json:"phone"`
}

func (p *bindSample) normalize() {
	trim(&p.Name)
	trim(&p.Email)
	trimOptional(&p.Phone)
}

func bindBody(t *testing.T, body string) (*bindSample, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

	var sample bindSample
	err := bindJSON(c, &sample, "Invalid sample")
	return &sample, err
}

func TestBindJSON_TrimsBeforeValidating(t *testing.T) {
	sample, err := bindBody(t, `{"name":"  Jo  ","email":" jo@x.com ","phone":"   "}`)

	require.NoError(t, err)
	assert.Equal(t, "Jo", sample.Name)
	assert.Equal(t, "jo@x.com", sample.Email)
	assert.Nil(t, sample.Phone, "blank optional fields become null")
}

func TestBindJSON_ReportsJSONFieldNames(t *testing.T) {
	_, err := bindBody(t, `{"name":"Too long name","email":"nope"}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Invalid sample", validationErr.Message)

	fields := map[string]string{}
	for _, fe := range validationErr.Fields {
		fields[fe.Field] = fe.Message
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields["email"], "valid email")
}

func TestBindJSON_MalformedBodies(t *testing.T) {
	for _, body := range []string{"", "{", `{"name": 5}`, "[]"} {
		t.Run(body, func(t *testing.T) {
			_, err := bindBody(t, body)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Fields)
		})
	}
}
