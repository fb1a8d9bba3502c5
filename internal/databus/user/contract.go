//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package user

import "context"

type DBRepo interface {
	UpsertProfile(ctx context.Context, userID string, username, avatarURL *string) error
}
