package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/register", handler.Register)
	mux.HandleFunc("POST /v1/auth/login", handler.Login)

	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}/player-points", handler.ListPlayerPoints)

	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	auth := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, h)
	}

	mux.Handle("POST /v1/auth/verify", auth(handler.VerifyToken))
	mux.Handle("GET /v1/users/profile", auth(handler.GetProfile))
	mux.Handle("PUT /v1/users/profile", auth(handler.UpdateProfile))

	mux.Handle("GET /v1/matches/me", auth(handler.ListMyMatches))
	mux.Handle("PUT /v1/matches/{matchID}/team", auth(handler.SubmitTeam))
	mux.Handle("GET /v1/matches/{matchID}/points", auth(handler.GetMyTeamPoints))

	mux.Handle("POST /v1/leagues/{leagueID}/join", auth(handler.JoinLeague))

	mux.Handle("GET /v1/wallet/balance", auth(handler.GetBalance))
	mux.Handle("GET /v1/wallet/transactions", auth(handler.ListTransactions))
	mux.Handle("POST /v1/wallet/add-money", auth(handler.AddMoney))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/matches/{matchID}/stats", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RecordMatchStats)))
	mux.Handle("POST /v1/internal/matches/{matchID}/finalize", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.FinalizeMatch)))
}
