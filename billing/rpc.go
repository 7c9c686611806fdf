package billing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"waterbill.app/billing/middleware/idempotency"
)

var validate = validator.New()

const internalErrorMessage = "an internal server error occurred"

// maxBodyBytes bounds a request body. Meter images travel inline as data URLs.
const maxBodyBytes = 8 << 20

type rpcRequest struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

type dataResponse struct {
	Data any `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// call is one decoded invocation handed to an action handler
type call struct {
	action  Action
	payload json.RawMessage
	header  http.Header
}

type handler func(ctx context.Context, s *Service, c call) (any, error)

var handlers map[Action]handler

func init() {
	handlers = map[Action]handler{
		ActionGetAllUsers:          invoke((*Service).GetAllUsers),
		ActionGetUserByID:          invoke((*Service).GetUserByID),
		ActionRegisterUser:         invoke((*Service).RegisterUser),
		ActionLoginUser:            invoke((*Service).LoginUser),
		ActionChangePassword:       invoke((*Service).ChangePassword),
		ActionForgotPasswordReset:  invoke((*Service).ForgotPasswordReset),
		ActionResetPasswordByAdmin: invoke((*Service).ResetPasswordByAdmin),
		ActionUpdateUser:           invoke((*Service).UpdateUser),
		ActionUpdateUserRole:       invoke((*Service).UpdateUserRole),
		ActionGetReadingsForUser:   invoke((*Service).GetReadingsForUser),
		ActionGetBillsForUser:      invoke((*Service).GetBillsForUser),
		ActionGetLatestBillForUser: invoke((*Service).GetLatestBillForUser),
		ActionAddMeterReading:      idempotent(invoke((*Service).AddMeterReading)),
		ActionPayBill:              idempotent(invoke((*Service).PayBill)),
		ActionGetAllAnnouncements:  invoke((*Service).GetAllAnnouncements),
		ActionAddAnnouncement:      invoke((*Service).AddAnnouncement),
		ActionGetAllPendingBills:   invoke((*Service).GetAllPendingBills),
		ActionGetInvoiceSummary:    invoke((*Service).GetInvoiceSummary),
		ActionApprovePayment:       invoke((*Service).ApprovePayment),
		ActionRejectPayment:        invoke((*Service).RejectPayment),
		ActionGetSystemReportData:  invoke((*Service).GetSystemReportData),
		ActionGetWaterPrice:        invoke((*Service).GetWaterPrice),
		ActionSetWaterPrice:        invoke((*Service).SetWaterPrice),
	}
}

// API is the single entry point. The body is {"action": ..., "payload": {...}}
// and the reply is {"data": ...} or {"error": "..."}.
//
//encore:api public raw method=GET,POST,PUT,PATCH,DELETE path=/api
func (s *Service) API(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var body rpcRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBodyBytes)).Decode(&body); err != nil {
		writeError(w, &errs.Error{Code: errs.InvalidArgument, Message: "malformed request body"})
		return
	}

	data, err := s.dispatch(req.Context(), body, req.Header)
	if err != nil {
		rlog.Error("api action failed", "action", body.Action, "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Data: data})
}

func (s *Service) dispatch(ctx context.Context, body rpcRequest, header http.Header) (any, error) {
	action, err := ParseAction(body.Action)
	if err != nil {
		return nil, err
	}
	return handlers[action](ctx, s, call{action: action, payload: body.Payload, header: header})
}

// invoke adapts a typed action method into a handler: decode the payload,
// run Validate when the request has one, then call the method.
func invoke[Req any, Resp any](fn func(*Service, context.Context, *Req) (Resp, error)) handler {
	return func(ctx context.Context, s *Service, c call) (any, error) {
		req := new(Req)
		if len(c.payload) > 0 {
			if err := json.Unmarshal(c.payload, req); err != nil {
				return nil, &errs.Error{Code: errs.InvalidArgument, Message: "malformed payload"}
			}
		}
		if v, ok := any(req).(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return nil, err
			}
		}
		return fn(s, ctx, req)
	}
}

// idempotent de-duplicates retries that carry the idempotency key header
func idempotent(h handler) handler {
	return func(ctx context.Context, s *Service, c call) (any, error) {
		if s.guard == nil {
			return h(ctx, s, c)
		}
		key := idempotency.ExtractIdempotencyKey(c.header)
		return s.guard.Run(ctx, string(c.action), key, c.payload, func(ctx context.Context) (any, error) {
			return h(ctx, s, c)
		})
	}
}

// validateStruct runs the struct tags and reports failures as invalid arguments
func validateStruct(r any) error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

func writeError(w http.ResponseWriter, err error) {
	var e *errs.Error
	if !errors.As(err, &e) || e.Code == errs.Internal && e.Message == "" {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: internalErrorMessage})
		return
	}
	writeJSON(w, e.Code.HTTPStatus(), errorResponse{Error: e.Message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		rlog.Error("failed to write response", "error", err)
	}
}
