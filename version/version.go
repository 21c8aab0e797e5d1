// version/version.go
package version

// AppName identifies the client in User-Agent headers.
var AppName = "store-api-client"

// Version holds the current version of the client library.
var Version = "0.1.0"

// UserAgent returns the default User-Agent value for outgoing requests.
func UserAgent() string {
	return AppName + "/" + Version
}
