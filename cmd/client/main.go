package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"gitlab.com/dirk.krummacker/notebook-service/pkg/model"
)

// Measures the average latency in microseconds of every endpoint for growing numbers of
// notebooks.
//
// Usage example on the command line:
// > go run main.go -base=http://localhost:8080/api/v1
func main() {
	base := flag.String("base", "http://localhost:8080/api/v1", "the base URL of the notebook API")
	flag.Parse()

	fmt.Println()
	fmt.Println("  Elements    CREATE    UPDATE       GET    DELETE ")
	fmt.Println("---------------------------------------------------")
	sizes := []int{1000, 5000, 10000, 50000, 100000}
	company := "Senatus Populusque Romanus"
	birthDate := "0027-11-09"
	jsonBody, err := json.Marshal(model.Notebook{
		FullName:  "Marcus Antonius",
		Company:   &company,
		Phone:     "+39 999 777 555",
		Email:     "marcus@example.org",
		BirthDate: &birthDate,
	})
	if err != nil {
		panic(err)
	}
	for _, loops := range sizes {
		firstID, _ := sendCreateRequest(*base, bytes.NewReader(jsonBody))
		fmt.Printf("%10d", loops)
		{
			var duration int64
			for i := 0; i < loops; i++ {
				_, d := sendCreateRequest(*base, bytes.NewReader(jsonBody))
				duration += d
			}
			fmt.Printf("%10d", duration/int64(loops*1000))
		}
		{
			f := func(id int64) int64 {
				return sendByIDRequest(*base, id, http.MethodPost, bytes.NewReader(jsonBody))
			}
			callInLoop(firstID, loops, f)
		}
		{
			f := func(id int64) int64 {
				return sendByIDRequest(*base, id, http.MethodGet, nil)
			}
			callInLoop(firstID, loops, f)
		}
		{
			f := func(id int64) int64 {
				return sendByIDRequest(*base, id, http.MethodDelete, nil)
			}
			callInLoop(firstID, loops, f)
		}
		sendByIDRequest(*base, firstID, http.MethodDelete, nil)
		fmt.Println()
	}
}

func callInLoop(firstID int64, loops int, f func(id int64) int64) {
	ids := createRandomSliceWithIDs(firstID+1, loops)
	var duration int64
	for _, id := range ids {
		duration += f(id)
	}
	fmt.Printf("%10d", duration/int64(loops*1000))
}

func createRandomSliceWithIDs(firstID int64, loops int) []int64 {
	ids := make([]int64, 0, loops)
	for i := 0; i < loops; i++ {
		ids = append(ids, firstID+int64(i))
	}
	rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	return ids
}

func sendCreateRequest(base string, bodyReader io.Reader) (int64, int64) {
	resBody, duration := sendRequest(http.MethodPost, base+"/notebook/", bodyReader)
	var notebook model.Notebook
	if err := json.Unmarshal(resBody, &notebook); err != nil {
		fmt.Println("could not unmarshal JSON", err)
		panic(err)
	}
	return notebook.Id, duration
}

func sendByIDRequest(base string, id int64, method string, bodyReader io.Reader) int64 {
	requestURL := fmt.Sprintf("%s/notebook/%d/", base, id)
	_, duration := sendRequest(method, requestURL, bodyReader)
	return duration
}

func sendRequest(method string, requestURL string, bodyReader io.Reader) ([]byte, int64) {
	req, err := http.NewRequest(method, requestURL, bodyReader)
	if err != nil {
		fmt.Println("could not create request", err)
		panic(err)
	}
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	before := time.Now().UnixNano()
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("error making http request", err)
		panic(err)
	}
	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		fmt.Println("could not read response body", err)
		panic(err)
	}
	after := time.Now().UnixNano()
	return resBody, after - before
}
