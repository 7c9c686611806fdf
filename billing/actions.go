package billing

import (
	"encore.dev/beta/errs"
)

// Action names one operation of the RPC surface
type Action string

const (
	ActionGetAllUsers          Action = "getAllUsers"
	ActionGetUserByID          Action = "getUserById"
	ActionRegisterUser         Action = "registerUser"
	ActionLoginUser            Action = "loginUser"
	ActionChangePassword       Action = "changePassword"
	ActionForgotPasswordReset  Action = "forgotPasswordReset"
	ActionResetPasswordByAdmin Action = "resetPasswordByAdmin"
	ActionUpdateUser           Action = "updateUser"
	ActionUpdateUserRole       Action = "updateUserRole"
	ActionGetReadingsForUser   Action = "getReadingsForUser"
	ActionGetBillsForUser      Action = "getBillsForUser"
	ActionGetLatestBillForUser Action = "getLatestBillForUser"
	ActionAddMeterReading      Action = "addMeterReading"
	ActionPayBill              Action = "payBill"
	ActionGetAllAnnouncements  Action = "getAllAnnouncements"
	ActionAddAnnouncement      Action = "addAnnouncement"
	ActionGetAllPendingBills   Action = "getAllPendingBills"
	ActionGetInvoiceSummary    Action = "getInvoiceSummary"
	ActionApprovePayment       Action = "approvePayment"
	ActionRejectPayment        Action = "rejectPayment"
	ActionGetSystemReportData  Action = "getSystemReportData"
	ActionGetWaterPrice        Action = "getWaterPrice"
	ActionSetWaterPrice        Action = "setWaterPrice"
)

// ParseAction resolves a wire action name. Unknown names are an internal
// failure, not a validation error, matching the closed action set.
func ParseAction(name string) (Action, error) {
	action := Action(name)
	if _, ok := handlers[action]; !ok {
		return "", &errs.Error{Code: errs.Internal, Message: "unknown API action: " + name}
	}
	return action, nil
}
