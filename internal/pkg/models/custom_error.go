package models

type CustomError struct {
	Code    string
	Message string
	Status  int
}

func (e CustomError) Error() string {
	return e.Message
}

func (e CustomError) ErrorCode() string {
	return e.Code
}

func (e CustomError) HTTPStatus() int {
	return e.Status
}
