package apperrors

import "errors"

// The storefront is Arabic-first; failures are surfaced to the caller as
// short display strings, not error codes.
const (
	MsgInvalidInput       = "بيانات غير صحيحة!"
	MsgInvalidCredentials = "بيانات الدخول غير صحيحة!"
	MsgDuplicateEmail     = "البريد الإلكتروني مستخدم بالفعل!"
	MsgEmailNotFound      = "لا يوجد حساب مرتبط بهذا البريد"
	MsgPasswordTooShort   = "كلمة المرور يجب أن تكون 6 أحرف على الأقل"
	MsgResetTooShort      = "كلمة المرور يجب أن تكون 4 أحرف على الأقل"
	MsgPasswordMismatch   = "كلمتا المرور غير متطابقتين"
	MsgUnauthorized       = "غير مصرح لك بالوصول"
	MsgLastAdmin          = "لا يمكن حذف آخر مشرف"
	MsgNotFound           = "العنصر غير موجود"
	MsgInternal           = "حدث خطأ ما!"
	MsgRegisterSuccess    = "تم إنشاء الحساب بنجاح!"
	MsgResetSuccess       = "تم تحديث كلمة المرور بنجاح"
)

// DisplayMessage maps an application error to its Arabic display string.
// Unrecognized errors map to the generic message.
func DisplayMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, ErrDuplicateEmail):
		return MsgDuplicateEmail
	case errors.Is(err, ErrPasswordTooShort):
		return MsgPasswordTooShort
	case errors.Is(err, ErrPasswordMismatch):
		return MsgPasswordMismatch
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrSessionExpired):
		return MsgUnauthorized
	case errors.Is(err, ErrLastAdmin):
		return MsgLastAdmin
	case errors.Is(err, ErrNotFound):
		return MsgNotFound
	case errors.Is(err, ErrValidation), errors.Is(err, ErrDuplicateCode):
		return MsgInvalidInput
	default:
		return MsgInternal
	}
}
