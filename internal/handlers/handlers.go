package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

func sendJSON(w http.ResponseWriter, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.Header().Add("Content-Type", "application/json")
	_, err = w.Write(payload)
	return err
}

func sendJSONOrLog(w http.ResponseWriter, log *logrus.Logger, v any) {
	if err := sendJSON(w, v); err != nil {
		log.WithFields(logrus.Fields{
			"data":  v,
			"error": err,
		}).Error("unable to send response")
	}
}

func sendErrorOrLog(
	w http.ResponseWriter, log *logrus.Logger, status int, e error,
) {
	w.WriteHeader(status)
	sendJSONOrLog(w, log, map[string]string{"error": e.Error()})
}
