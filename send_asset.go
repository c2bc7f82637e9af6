package common

import (
	"github.com/facebookgo/clock"
	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
)

// TransferInstruction is the validated, mechanism-tagged order handed to
// the messaging layer. The RequestId deduplicates retries downstream.
type TransferInstruction struct {
	RequestId uuid.UUID    `json:"requestId"`
	Recipient string       `json:"recipient"`
	Asset     Asset        `json:"asset"`
	Kind      TransferKind `json:"kind"`
	CreatedAt int64        `json:"createdAt"`
}

// BuildTransfer turns a resolved asset into a transfer instruction. The
// info must belong to the asset being moved, and zero-amount transfers
// have no business meaning.
func BuildTransfer(clk clock.Clock, info *AssetInfo, recipient string, asset Asset) (*TransferInstruction, error) {
	if recipient == "" {
		return nil, errors.New("empty recipient")
	}
	if !asset.Identity.Equals(info.Identity) {
		return nil, errors.Wrapf(ErrAssetMismatch, "transfer %s with info for %s", asset.Identity, info.Identity)
	}
	if asset.Amount.IsZero() {
		return nil, errors.Wrapf(ErrZeroAmount, "transfer of %s", asset.Identity)
	}
	return &TransferInstruction{
		RequestId: uuid.Must(uuid.NewV4()),
		Recipient: recipient,
		Asset:     asset,
		Kind:      info.TransferKind,
		CreatedAt: clk.Now().Unix(),
	}, nil
}

// BuildTransfers emits one instruction per held identity, in canonical
// order so the resulting message batch is deterministic.
func BuildTransfers(clk clock.Clock, infos *AssetMap[*AssetInfo], recipient string, amounts *AssetMap[ScaledAmount]) ([]*TransferInstruction, error) {
	instructions := make([]*TransferInstruction, 0, amounts.Len())
	err := amounts.Range(func(id AssetIdentity, amount ScaledAmount) error {
		info, ok := infos.Get(id)
		if !ok {
			return errors.Wrapf(ErrUnknownAsset, "%s", id)
		}
		instruction, err := BuildTransfer(clk, info, recipient, NewAsset(id, amount))
		if err != nil {
			return err
		}
		instructions = append(instructions, instruction)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return instructions, nil
}
