package common

// MaxRequestBody caps decoded JSON request bodies at 1 MiB. Feedback
// submissions and admin writes are small; anything larger is abuse.
const MaxRequestBody = 1 << 20
