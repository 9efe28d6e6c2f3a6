package models

import "time"

// Card represents one tracked credit card. BillingDay and DueDay are
// independent day-of-month values in [1,31]; no ordering between them
// is enforced.
type Card struct {
	ID      int `json:"id"`
	OwnerID int `json:"owner_id"`

	HolderName  string `json:"holder_name"`
	Nickname    string `json:"nickname,omitempty"`
	BankName    string `json:"bank_name"`
	IsOtherBank bool   `json:"is_other_bank"`
	Network     string `json:"network"`
	LastFour    string `json:"last_four"`
	BillingDay  int    `json:"billing_day"`
	DueDay      int    `json:"due_day"`
	CreditLimit int64  `json:"credit_limit"`
	Color       string `json:"color"`

	NotifyOnBilling  bool `json:"notify_on_billing"`
	NotifyBeforeDue  bool `json:"notify_before_due"`
	NotifyDaysBefore *int `json:"notify_days_before,omitempty"`

	// reset to false on every edit; never cleared automatically at
	// cycle rollover (matches the original behavior)
	PaidThisCycle bool `json:"paid_this_cycle"`

	CreatedAt time.Time `json:"created_at"`
}

// CardWithOwner is what the reminder scan works on: a card joined with
// its owner's contact channels.
type CardWithOwner struct {
	Card
	OwnerEmail     string `json:"owner_email"`
	TelegramChatID *int64 `json:"-"`
}

// CardNetworks mirrors the allowed values of the card network field.
var CardNetworks = []string{
	"Debit Card", "Visa", "MasterCard", "RuPay", "American Express", "Diners Club",
}

// BankList is the fixed bank dropdown offered on card creation.
var BankList = []string{
	"AU Small Finance Bank", "American Express Bank", "Axis Bank", "Bank Of Baroda",
	"Canara Bank", "Citi Bank", "FederalBank", "HDFC Bank", "HSBS Bank", "ICICI Bank",
	"IDFC Bank", "IndusInd Bank", "Kotak Bank", "PNB bank", "RBI Bank", "SBI Bank",
	"SBM Bank", "Slice Bank", "Standard Chartered Bank", "Union Bank",
	"Unity Small Finance Bank", "Utkarsha Small Finance Bank", "Yes Bank",
	"Dinersclub", "Master Card", "Rupay", "Visa",
}
