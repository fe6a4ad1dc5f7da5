package configs

import _ "embed"

// ApplicationYAML holds the default properties, overridable through PROPERTIES_FILE_PATH.
//
//go:embed application.yml
var ApplicationYAML []byte

// MessagesYAML holds the default message catalog, overridable through MESSAGES_FILE_PATH.
//
//go:embed messages.yml
var MessagesYAML []byte
