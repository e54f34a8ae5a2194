package yaml

import (
	"fmt"

	"github.com/bnema/trastodon/internal/domain"
	yaml "gopkg.in/yaml.v3"
)

type stateSchema struct {
	Server       string       `yaml:"server,omitempty"`
	ClientID     string       `yaml:"client_id,omitempty"`
	ClientSecret string       `yaml:"client_secret,omitempty"`
	AccessToken  string       `yaml:"access_token,omitempty"`
	NotifPointer cursorSchema `yaml:"notif_pointer,omitempty"`
}

// cursorSchema accepts the cursor as an integer or as the decimal string the
// API hands out. It is always written back as an integer.
type cursorSchema int64

func (c *cursorSchema) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("notif_pointer: expected scalar at line %d", value.Line)
	}

	id, err := domain.ParseNotificationID(value.Value)
	if err != nil {
		return fmt.Errorf("notif_pointer: %w", err)
	}

	*c = cursorSchema(id)
	return nil
}

func toSchema(state domain.State) stateSchema {
	return stateSchema{
		Server:       state.Server,
		ClientID:     state.ClientID,
		ClientSecret: state.ClientSecret,
		AccessToken:  state.AccessToken,
		NotifPointer: cursorSchema(state.NotifPointer),
	}
}

func fromSchema(schema stateSchema) domain.State {
	return domain.State{
		Server:       schema.Server,
		ClientID:     schema.ClientID,
		ClientSecret: schema.ClientSecret,
		AccessToken:  schema.AccessToken,
		NotifPointer: domain.NotificationID(schema.NotifPointer),
	}
}
