package dbmodel

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	fixture := DBModelLead{FullName: "Ada Lovelace", Email: "ada@example.com", Phone: "+3247123456"}
	tests := []struct {
		name    string
		modify  func(l *DBModelLead)
		wantErr bool
	}{
		{
			name:   "well formed lead",
			modify: func(l *DBModelLead) {},
		},
		{
			name:    "missing last name",
			modify:  func(l *DBModelLead) { l.FullName = "Ada " },
			wantErr: true,
		},
		{
			name:    "double space in name",
			modify:  func(l *DBModelLead) { l.FullName = "Ada  Lovelace" },
			wantErr: true,
		},
		{
			name:    "email without domain",
			modify:  func(l *DBModelLead) { l.Email = "ada@" },
			wantErr: true,
		},
		{
			name:    "phone too short",
			modify:  func(l *DBModelLead) { l.Phone = "+324712345" },
			wantErr: true,
		},
		{
			name:    "phone wrong prefix",
			modify:  func(l *DBModelLead) { l.Phone = "+3248123456" },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := fixture
			tt.modify(&lead)
			err := lead.Validate()
			if tt.wantErr {
				assert.NotNil(t, err)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestArgsOrder(t *testing.T) {
	lead := DBModelLead{FullName: "a b", Email: "c@d.e", Phone: "+3247000001"}
	assert.Equal(t, []interface{}{"a b", "c@d.e", "+3247000001"}, lead.Args())
}

func TestColumnTags(t *testing.T) {
	typ := reflect.TypeOf(DBModelLead{})
	want := []string{"full_name", "email", "phone"}
	for i, col := range want {
		f := typ.Field(i)
		assert.Equal(t, col, f.Tag.Get("db"), f.Name)
		assert.Empty(t, f.Tag.Get("json"), f.Name)
	}
}
