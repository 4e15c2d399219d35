package order

import "anishop/internal/application/order/usecases"

type PlaceOrderRequest struct {
	ProductLink    string  `json:"product_link" binding:"required"`
	Quantity       int     `json:"quantity" binding:"required,min=1"`
	VoucherCode    string  `json:"voucher_code"`
	RecipientName  string  `json:"recipient_name" binding:"required"`
	PhoneOrContact string  `json:"phone_or_contact" binding:"required"`
	Address        string  `json:"address" binding:"required"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Notes          *string `json:"notes"`
}

func (r *PlaceOrderRequest) ToCommand(userID *string) usecases.PlaceOrderCommand {
	return usecases.PlaceOrderCommand{
		UserID:        userID,
		ProductLink:   r.ProductLink,
		Quantity:      r.Quantity,
		VoucherCode:   r.VoucherCode,
		RecipientName: r.RecipientName,
		Contact:       r.PhoneOrContact,
		Address:       r.Address,
		Email:         r.Email,
		Notes:         r.Notes,
	}
}
