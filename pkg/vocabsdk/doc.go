/*
Package vocabsdk is a Go client for the vocab service HTTP API.

# Client vs Session

An SDKClient talks to the public endpoints and opens sessions:

	client := vocabsdk.NewSDKClient("http://localhost:5000")

	userID, err := client.Register(ctx, "ada@example.com", "hunter2")
	session, err := client.Login(ctx, "ada@example.com", "hunter2")

A Session carries the access token and the refresh token taken from the
refreshToken cookie. When the server rejects the access token with 403 the
session rotates the refresh token once and retries the call:

	me, err := session.Protected(ctx)
	words, err := session.ImportWords(ctx, vocabsdk.ImportWordsRequest{...})
	err = session.Logout(ctx)

# Errors

Every non-success response is returned as an *APIError carrying the HTTP
status and the error code from the body. The same type is used by the
server to write those bodies.

	var apiErr *vocabsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == vocabsdk.ErrorCodeEmailTaken {
		// ...
	}
*/
package vocabsdk
