package protocol

import (
	"encoding/json"
	"fmt"
)

// ServerInfo carries the fields of the server's INFO announcement that this
// client inspects. It is rebuilt from every INFO line and never retained.
type ServerInfo struct {
	ServerID     string `json:"server_id"`
	Version      string `json:"version"`
	Go           string `json:"go"`
	Host         string `json:"host"`
	Port         uint16 `json:"port"`
	MaxPayload   int64  `json:"max_payload"`
	SSLRequired  bool   `json:"ssl_required"`
	AuthRequired bool   `json:"auth_required"`
}

// ParseInfo decodes the JSON object following the INFO keyword. Fields not
// listed in ServerInfo are ignored.
func ParseInfo(args []byte) (*ServerInfo, error) {
	info := &ServerInfo{}
	if err := json.Unmarshal(args, info); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInfo, err)
	}
	return info, nil
}
