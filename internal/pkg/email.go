package pkg

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string // 发件人邮箱
	Password string // 授权码/密码
	From     string // 显示的发件人
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

// InviteHTML 社区邀请邮件正文
func InviteHTML(inviter, communityTitle, communityName string) string {
	return fmt.Sprintf(
		`<p>您好，</p><p><b>%s</b> 邀请您加入社区 <b>%s</b>（/c/%s）。</p><p>登录后即可加入。</p>`,
		inviter, communityTitle, communityName)
}
