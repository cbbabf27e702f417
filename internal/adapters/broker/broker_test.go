package broker

import (
	"encoding/json"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given broker construction", t, func() {
		creds := Credentials{AppID: "1234567", Key: "key", Secret: "secret", Cluster: "ap2"}

		Convey("When all credentials are present", func() {
			p, err := New(creds, "presentation")

			Convey("Then the broker should be ready", func() {
				So(err, ShouldBeNil)
				So(p, ShouldNotBeNil)
				So(p.Channel(), ShouldEqual, "presentation")
			})
		})

		Convey("When a credential is missing", func() {
			for _, c := range []Credentials{
				{Key: "key", Secret: "secret"},
				{AppID: "1234567", Secret: "secret"},
				{AppID: "1234567", Key: "key"},
			} {
				p, err := New(c, "presentation")
				So(p, ShouldBeNil)
				So(errors.Is(err, ErrMissingCredentials), ShouldBeTrue)
			}
		})

		Convey("When the channel is empty", func() {
			p, err := New(creds, "")

			Convey("Then construction should fail", func() {
				So(p, ShouldBeNil)
				So(errors.Is(err, ErrNoChannel), ShouldBeTrue)
			})
		})
	})
}

func TestAuthorize(t *testing.T) {
	Convey("Given a broker with valid credentials", t, func() {
		p, err := New(Credentials{AppID: "1234567", Key: "key", Secret: "secret", Cluster: "ap2"}, "presentation")
		So(err, ShouldBeNil)

		Convey("When authorizing a private channel subscription", func() {
			body := []byte("channel_name=private-presentation&socket_id=123.456")
			token, err := p.Authorize(body)

			Convey("Then a signed token should be returned", func() {
				So(err, ShouldBeNil)

				var resp map[string]string
				So(json.Unmarshal(token, &resp), ShouldBeNil)
				So(resp["auth"], ShouldStartWith, "key:")
			})
		})

		Convey("When the subscription body is malformed", func() {
			_, err := p.Authorize([]byte("%zz"))

			Convey("Then authorization should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
