package consts

const (
	ApplicationsCollection = "loan_applications"
	UsersCollection        = "users"
)
