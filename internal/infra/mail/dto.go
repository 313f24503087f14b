package mail

type DigestTaskData struct {
	LeadName    string
	Description string
	Nature      string
	Due         string
}

type DigestEmailData struct {
	Day   string
	Tasks []DigestTaskData
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
