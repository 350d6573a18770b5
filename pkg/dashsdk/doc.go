/*
Package dashsdk is the Go client for the MorjaHome dashboard API, and the
home of its JSON wire types.

# SDKClient vs Session

SDKClient covers the unauthenticated endpoints and opens sessions:

	client := dashsdk.NewSDKClient("http://dashboard.lan:3000")

	health, err := client.GetLiveness(ctx)
	links, err := client.PublicLinks(ctx, "")

	session, err := client.Login(ctx, "alice", "password", "")
	var apiErr *dashsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == dashsdk.CodeTwoFactorRequired {
		session, err = client.Login(ctx, "alice", "password", totpCode)
	}

A Session carries the bearer token returned by login. Tokens are not
refreshed; once one expires, log in again.

	dash, err := session.Dashboard(ctx)
	link, err := session.CreateLink(ctx, dashsdk.CreateLinkRequest{Title: "Grafana", URL: "http://grafana.lan"})
	_, err = session.ClickLink(ctx, link.ID)

Admin endpoints live on the same Session and fail with CodeForbidden for
accounts without the admin role:

	users, err := session.ListUsers(ctx)

# Errors

Every non-2xx response is returned as *APIError with the HTTP status, the
stable Code and the human Message. Validation failures also carry the
per-field Errors.
*/
package dashsdk
