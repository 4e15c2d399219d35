package voucher

import (
	"fmt"
	"strings"
	"time"

	"anishop/internal/shared/biztime"
)

// Type distinguishes free vouchers (waive the service fee) from paid ones
// (set a fixed fee amount).
type Type string

const (
	TypeFree Type = "free"
	TypePaid Type = "paid"
)

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid voucher type: %s", s)
	}
	return t, nil
}

func (t Type) IsValid() bool {
	return t == TypeFree || t == TypePaid
}

func (t Type) String() string { return string(t) }

// Voucher is a service-fee modifier. Its fee is snapshotted onto orders at
// placement time, so later edits or deletion never affect placed orders.
type Voucher struct {
	id          uint
	code        string
	voucherType Type
	feeAmount   *int64
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

// NewVoucher creates a voucher. Codes are stored upper-cased. Paid vouchers
// require a positive fee amount; free vouchers must not carry one.
func NewVoucher(code string, voucherType Type, feeAmount *int64, description string) (*Voucher, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("voucher code is required")
	}
	if !voucherType.IsValid() {
		return nil, fmt.Errorf("invalid voucher type: %s", voucherType)
	}
	if voucherType == TypePaid {
		if feeAmount == nil || *feeAmount <= 0 {
			return nil, fmt.Errorf("paid voucher requires a positive fee amount")
		}
	} else if feeAmount != nil {
		return nil, fmt.Errorf("free voucher cannot carry a fee amount")
	}

	now := biztime.NowUTC()
	return &Voucher{
		code:        code,
		voucherType: voucherType,
		feeAmount:   feeAmount,
		description: description,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructVoucher rebuilds a voucher from the persistence layer.
func ReconstructVoucher(
	id uint,
	code string,
	voucherType Type,
	feeAmount *int64,
	description string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Voucher, error) {
	if id == 0 {
		return nil, fmt.Errorf("voucher ID cannot be zero")
	}
	if code == "" {
		return nil, fmt.Errorf("voucher code is required")
	}
	if !voucherType.IsValid() {
		return nil, fmt.Errorf("invalid voucher type: %s", voucherType)
	}
	return &Voucher{
		id:          id,
		code:        code,
		voucherType: voucherType,
		feeAmount:   feeAmount,
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (v *Voucher) ID() uint            { return v.id }
func (v *Voucher) Code() string        { return v.code }
func (v *Voucher) VoucherType() Type   { return v.voucherType }
func (v *Voucher) FeeAmount() *int64   { return v.feeAmount }
func (v *Voucher) Description() string { return v.description }
func (v *Voucher) IsActive() bool      { return v.isActive }
func (v *Voucher) CreatedAt() time.Time { return v.createdAt }
func (v *Voucher) UpdatedAt() time.Time { return v.updatedAt }

// ResolveFee returns the service fee this voucher implies for a new order.
// Free vouchers waive the fee entirely.
func (v *Voucher) ResolveFee() int64 {
	if v.voucherType == TypePaid && v.feeAmount != nil {
		return *v.feeAmount
	}
	return 0
}

// SetActive toggles whether the voucher can be applied to new orders.
func (v *Voucher) SetActive(active bool) {
	v.isActive = active
	v.updatedAt = biztime.NowUTC()
}

// SetID sets the voucher ID (only for persistence layer use).
func (v *Voucher) SetID(id uint) error {
	if v.id != 0 {
		return fmt.Errorf("voucher ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("voucher ID cannot be zero")
	}
	v.id = id
	return nil
}
