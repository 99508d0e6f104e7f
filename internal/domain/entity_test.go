package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, e Entity, body string) Entity {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), e))
	e.Normalize()
	return e
}

func TestValidateRequiredFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		entity    Entity
		body      string
		wantField string
	}{
		{name: "customer ok", entity: &Customer{}, body: `{"name":"Softhouse"}`},
		{name: "customer empty name", entity: &Customer{}, body: `{"name":""}`, wantField: "name"},
		{name: "customer blank name", entity: &Customer{}, body: `{"name":"   "}`, wantField: "name"},
		{name: "customer missing name", entity: &Customer{}, body: `{"id":"1234"}`, wantField: "name"},
		{name: "user bad email", entity: &User{}, body: `{"name":"A","email":"nope"}`, wantField: "email"},
		{name: "user ok", entity: &User{}, body: `{"name":"A","email":"A@Softhouse.se"}`},
		{name: "file missing original", entity: &File{}, body: `{"generatedName":"x.png"}`, wantField: "originalName"},
		{name: "access ok", entity: &Access{}, body: `{"role_id":"r1","attribute_id":"a1"}`},
		{name: "access camel case keys", entity: &Access{}, body: `{"roleId":"r1","attributeId":"a1"}`, wantField: "role_id"},
		{
			name:      "connector missing user",
			entity:    &UserToSkillConnector{},
			body:      `{"skillId":"123","userId":""}`,
			wantField: "userId",
		},
		{
			name:      "skill group connector missing group",
			entity:    &SkillToSkillGroupConnector{},
			body:      `{"skillId":"123"}`,
			wantField: "skillGroupId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(decode(t, tt.entity, tt.body))
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUserToSkillConnectorRanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		body      string
		wantField string
	}{
		{body: `{"skillId":"1","userId":"2","level":"3","years":"5"}`},
		{body: `{"skillId":"1","userId":"2","level":5,"years":1}`},
		{body: `{"skillId":"1","userId":"2"}`},
		{body: `{"skillId":"1","userId":"2","level":"0"}`, wantField: "level"},
		{body: `{"skillId":"1","userId":"2","level":"6"}`, wantField: "level"},
		{body: `{"skillId":"1","userId":"2","level":"high"}`, wantField: "level"},
		{body: `{"skillId":"1","userId":"2","years":"0"}`, wantField: "years"},
		{body: `{"skillId":"1","userId":"2","years":2.5}`, wantField: "years"},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			t.Parallel()
			err := Validate(decode(t, &UserToSkillConnector{}, tt.body))
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestNormalizeDefaultsAndWhitelist(t *testing.T) {
	t.Parallel()

	skill := decode(t, &Skill{}, `{"name":" test1 ","id":"1234"}`)
	out, err := json.Marshal(skill)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"test1","icon":"fa fa-flask"}`, string(out))

	custom := decode(t, &Skill{}, `{"name":"go","icon":"fa fa-code"}`)
	assert.Equal(t, "fa fa-code", custom.(*Skill).Icon)

	user := decode(t, &User{}, `{"name":"A","email":" A@Softhouse.SE "}`)
	assert.Equal(t, "a@softhouse.se", user.(*User).Email)
}

func TestFieldNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"name"}, FieldNames(&Customer{}))
	assert.Equal(t, []string{"skillId", "userId", "level", "years"}, FieldNames(&UserToSkillConnector{}))
	assert.Equal(t, []string{"role_id", "attribute_id"}, FieldNames(&Access{}))
}

func TestFlexString(t *testing.T) {
	t.Parallel()

	var c UserToSkillConnector
	require.NoError(t, json.Unmarshal([]byte(`{"level":4,"years":" 7 "}`), &c))
	assert.Equal(t, FlexString("4"), c.Level)
	assert.Equal(t, FlexString("7"), c.Years)

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"skillId":"","userId":"","level":"4","years":"7"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"level":true}`), &c))

	require.NoError(t, json.Unmarshal([]byte(`{"level":null}`), &c))
	assert.Equal(t, FlexString(""), c.Level)
}
