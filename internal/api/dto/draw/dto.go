package draw

type SetDrawRequest struct {
	Numbers []int `json:"numbers"`
}

type DrawResponse struct {
	Date    string `json:"date"`
	Numbers []int  `json:"numbers"`
	Source  string `json:"source"`
}
