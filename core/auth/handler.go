package auth

import (
	"encoding/json"
	"net/http"
)

// HTTP adapters for the auth actions. They parse the standard "email",
// "password" and "mode" form fields, redirect with 303 See Other on success
// and render field-keyed errors as a JSON object with 422 status otherwise.
// Applications with their own rendering call the Service methods directly.

// SignupHandler returns a handler for the signup form post.
func SignupHandler[Data any](svc *Service[Data]) http.HandlerFunc {
	return actionHandler(func(w http.ResponseWriter, r *http.Request) (Result, error) {
		return svc.Signup(w, r, r.PostFormValue("email"), r.PostFormValue("password"))
	})
}

// LoginHandler returns a handler for the login form post.
func LoginHandler[Data any](svc *Service[Data]) http.HandlerFunc {
	return actionHandler(func(w http.ResponseWriter, r *http.Request) (Result, error) {
		return svc.Login(w, r, r.PostFormValue("email"), r.PostFormValue("password"))
	})
}

// AuthHandler returns a handler dispatching on the "mode" form field:
// "login" runs the login action, anything else signup.
func AuthHandler[Data any](svc *Service[Data]) http.HandlerFunc {
	return actionHandler(func(w http.ResponseWriter, r *http.Request) (Result, error) {
		return svc.Auth(w, r, r.PostFormValue("mode"), r.PostFormValue("email"), r.PostFormValue("password"))
	})
}

// LogoutHandler returns a handler for the logout action.
func LogoutHandler[Data any](svc *Service[Data]) http.HandlerFunc {
	return actionHandler(func(w http.ResponseWriter, r *http.Request) (Result, error) {
		return svc.Logout(w, r)
	})
}

func actionHandler(action func(w http.ResponseWriter, r *http.Request) (Result, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := action(w, r)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if !result.OK() {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]any{"errors": result.Errors})
			return
		}

		http.Redirect(w, r, result.RedirectTo, http.StatusSeeOther)
	}
}
