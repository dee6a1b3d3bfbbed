package i18n

import "strconv"

// Message IDs.
const (
	AppName       = "app_name"
	SplashTagline = "splash_tagline"

	OnboardingNext  = "onboarding_next"
	OnboardingStart = "onboarding_start"
	OnboardingSkip  = "onboarding_skip"

	WelcomeTitle    = "welcome_title"
	WelcomeText     = "welcome_text"
	WelcomeLogin    = "welcome_login"
	WelcomeRegister = "welcome_register"

	LoginTitle       = "login_title"
	LoginSubtitle    = "login_subtitle"
	LoginSubmit      = "login_submit"
	LoginAlternative = "login_alternative"
	LoginForgot      = "login_forgot"
	LoginRegister    = "login_register"

	FieldEmail         = "field_email"
	FieldPassword      = "field_password"
	FieldConfirm       = "field_confirm"
	FieldTerms         = "field_terms"
	FieldLastName      = "field_last_name"
	FieldFirstName     = "field_first_name"
	FieldMiddleName    = "field_middle_name"
	FieldBirthDate     = "field_birth_date"
	FieldGender        = "field_gender"
	GenderMale         = "gender_male"
	GenderFemale       = "gender_female"
	FieldLicenseNumber = "field_license_number"
	FieldIssueDate     = "field_issue_date"
	FieldLicensePhoto  = "field_license_photo"
	FieldPassportPhoto = "field_passport_photo"
	PhotoAttach        = "photo_attach"
	PhotoAttached      = "photo_attached"

	RegisterTitle  = "register_title"
	RegisterStep   = "register_step"
	RegisterNext   = "register_next"
	RegisterFinish = "register_finish"

	SuccessTitle    = "success_title"
	SuccessText     = "success_text"
	SuccessContinue = "success_continue"

	NoConnectionTitle = "no_connection_title"
	NoConnectionText  = "no_connection_text"
	NoConnectionRetry = "no_connection_retry"

	MainTitle  = "main_title"
	MainText   = "main_text"
	MainLogout = "main_logout"

	ActionBack   = "action_back"
	ActionSelect = "action_select"
	ActionEdit   = "action_edit"
	ActionDone   = "action_done"
	ActionExit   = "action_exit"
	ActionCancel = "action_cancel"

	KeyboardLayout = "keyboard_layout"
	KeyboardShift  = "keyboard_shift"
	KeyboardErase  = "keyboard_erase"
	ChoosePhoto    = "choose_photo"

	NoticeFillAllFields       = "notice_fill_all_fields"
	NoticeInvalidEmail        = "notice_invalid_email"
	NoticePasswordTooShort    = "notice_password_too_short"
	NoticePasswordMismatch    = "notice_password_mismatch"
	NoticeTermsNotAccepted    = "notice_terms_not_accepted"
	NoticeInvalidDate         = "notice_invalid_date"
	NoticeFutureDate          = "notice_future_date"
	NoticeLicenseLength       = "notice_license_length"
	NoticePhotoMissing        = "notice_photo_missing"
	NoticeEmailNotFound       = "notice_email_not_found"
	NoticeWrongPassword       = "notice_wrong_password"
	NoticeRecoveryUnavailable = "notice_recovery_unavailable"
	NoticeCameraFallback      = "notice_camera_fallback"
	NoticeCaptureFailed       = "notice_capture_failed"
	NoticeStillOffline        = "notice_still_offline"
)

// OnboardingTitle and OnboardingText return the IDs for slide n, counted from 1.
func OnboardingTitle(n int) string { return onboardingID("title", n) }

func OnboardingText(n int) string { return onboardingID("text", n) }

func onboardingID(part string, n int) string {
	return "onboarding_" + part + "_" + strconv.Itoa(n)
}
