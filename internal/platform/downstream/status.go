package downstream

import "net/http"

// statusMapper turns a response status into nil (success) or a sentinel error.
type statusMapper func(status int) error

func createOutcome(status int) error {
	switch status {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusBadRequest:
		return ErrInvalidPayload
	case http.StatusInternalServerError:
		return ErrSaveFailed
	default:
		return ErrUnexpectedStatus
	}
}

func getOutcome(status int) error {
	switch status {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusInternalServerError:
		return ErrFetchFailed
	default:
		return ErrUnexpectedStatus
	}
}

func updateOutcome(status int) error {
	switch status {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusBadRequest:
		return ErrInvalidPayload
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusInternalServerError:
		return ErrSaveFailed
	default:
		return ErrUnexpectedStatus
	}
}

func deleteOutcome(status int) error {
	switch status {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusInternalServerError:
		return ErrRemoveFailed
	default:
		return ErrUnexpectedStatus
	}
}
