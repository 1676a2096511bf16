package signal

func (ctl *SessionWSController) handlePing(
	conn *WsSessionConn,
) {
	resp := struct {
		Type string `json:"type"`
	}{
		Type: "pong",
	}
	ctl.sendJSON(conn, resp)
}
