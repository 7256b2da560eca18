package models

// Choice pairs a stored enumeration code with its display label.
type Choice struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// ChoiceSet is an ordered enumeration of valid codes.
type ChoiceSet []Choice

// Valid reports whether code is a member of the set.
func (s ChoiceSet) Valid(code string) bool {
	for _, c := range s {
		if c.Code == code {
			return true
		}
	}
	return false
}

// Label returns the display label for code, or the code itself when unknown.
func (s ChoiceSet) Label(code string) string {
	for _, c := range s {
		if c.Code == code {
			return c.Label
		}
	}
	return code
}

// Codes returns the valid codes as a slice of empty interfaces, suitable for
// ozzo-validation's In rule.
func (s ChoiceSet) Codes() []interface{} {
	codes := make([]interface{}, len(s))
	for i, c := range s {
		codes[i] = c.Code
	}
	return codes
}

// Appointment statuses
const (
	AppointmentScheduled = "scheduled"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
	AppointmentNoShow    = "no_show"
)

var AppointmentStatuses = ChoiceSet{
	{AppointmentScheduled, "Scheduled"},
	{AppointmentConfirmed, "Confirmed"},
	{AppointmentCancelled, "Cancelled"},
	{AppointmentCompleted, "Completed"},
	{AppointmentNoShow, "No Show"},
}

// Notification types and statuses
const (
	NotificationEmail    = "email"
	NotificationSMS      = "sms"
	NotificationWhatsApp = "whatsapp"

	NotificationPending = "pending"
	NotificationSent    = "sent"
	NotificationFailed  = "failed"
)

var NotificationTypes = ChoiceSet{
	{NotificationEmail, "E-mail"},
	{NotificationSMS, "SMS"},
	{NotificationWhatsApp, "WhatsApp"},
}

var NotificationStatuses = ChoiceSet{
	{NotificationPending, "Pending"},
	{NotificationSent, "Sent"},
	{NotificationFailed, "Failed"},
}

// Exam request statuses
const (
	ExamRequested = "requested"
	ExamScheduled = "scheduled"
	ExamPerformed = "performed"
	ExamCancelled = "cancelled"
)

var ExamRequestStatuses = ChoiceSet{
	{ExamRequested, "Requested"},
	{ExamScheduled, "Scheduled"},
	{ExamPerformed, "Performed"},
	{ExamCancelled, "Cancelled"},
}

// Payment methods and statuses
const (
	PaymentCash      = "cash"
	PaymentCredit    = "credit_card"
	PaymentDebit     = "debit_card"
	PaymentPix       = "pix"
	PaymentBankSlip  = "bank_slip"
	PaymentInsurance = "insurance"

	PaymentPending  = "pending"
	PaymentApproved = "approved"
	PaymentDeclined = "declined"
	PaymentReversed = "reversed"
)

var PaymentMethods = ChoiceSet{
	{PaymentCash, "Cash"},
	{PaymentCredit, "Credit Card"},
	{PaymentDebit, "Debit Card"},
	{PaymentPix, "PIX"},
	{PaymentBankSlip, "Bank Slip"},
	{PaymentInsurance, "Health Insurance"},
}

var PaymentStatuses = ChoiceSet{
	{PaymentPending, "Pending"},
	{PaymentApproved, "Approved"},
	{PaymentDeclined, "Declined"},
	{PaymentReversed, "Reversed"},
}

// Expense categories
var ExpenseCategories = ChoiceSet{
	{"rent", "Rent"},
	{"electricity", "Electricity"},
	{"water", "Water"},
	{"internet", "Internet"},
	{"phone", "Phone"},
	{"office_supplies", "Office Supplies"},
	{"equipment", "Equipment"},
	{"maintenance", "Maintenance"},
	{"salary", "Salary"},
	{"tax", "Tax"},
	{"other", "Other"},
}

// Genders and blood types
var Genders = ChoiceSet{
	{"M", "Masculine"},
	{"F", "Feminine"},
	{"O", "Other"},
}

var BloodTypes = ChoiceSet{
	{"A+", "A+"},
	{"A-", "A-"},
	{"B+", "B+"},
	{"B-", "B-"},
	{"AB+", "AB+"},
	{"AB-", "AB-"},
	{"O+", "O+"},
	{"O-", "O-"},
}

// Weekdays maps schedule weekday numbers (0 = Monday) to labels.
var Weekdays = []Choice{
	{"0", "Monday"},
	{"1", "Tuesday"},
	{"2", "Wednesday"},
	{"3", "Thursday"},
	{"4", "Friday"},
	{"5", "Saturday"},
	{"6", "Sunday"},
}

// WeekdayLabel returns the label for a 0-6 weekday number.
func WeekdayLabel(weekday int) string {
	if weekday < 0 || weekday >= len(Weekdays) {
		return ""
	}
	return Weekdays[weekday].Label
}
